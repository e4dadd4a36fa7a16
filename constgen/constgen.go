// Package constgen renders named widefix values as source code constants,
// so that shaders and Go programs can share values computed on the host.
//
// A constant is rendered as its raw words, the least significant first,
// which is the layout the compute stage expects in its buffers.
package constgen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/avdva/widefix"
)

const (
	widefixPath = "github.com/avdva/widefix"

	header = "Code generated by widefix consts. DO NOT EDIT."
)

var (
	// ErrInvalidName is returned for names, which are not identifiers.
	ErrInvalidName = errors.New("invalid constant name")
	// ErrDuplicateName is returned when a name is added twice.
	ErrDuplicateName = errors.New("duplicate constant name")

	identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Const is a named value.
type Const struct {
	Name  string
	Value widefix.Fixed
}

// Set is an ordered collection of constants with unique names.
// The zero value is an empty set ready to use.
type Set struct {
	consts []Const
	names  map[string]struct{}
}

// Defaults returns the constants every shader build needs.
func Defaults() *Set {
	var s Set
	s.MustAdd("FIX_SIXTY_FOUR", widefix.FromInt64(64))
	s.MustAdd("FIX_NEG_HALF", widefix.One.Rsh1().Neg())
	return &s
}

// Add appends a constant to the set.
func (s *Set) Add(name string, v widefix.Fixed) error {
	if !identRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if _, found := s.names[name]; found {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	if s.names == nil {
		s.names = make(map[string]struct{})
	}
	s.names[name] = struct{}{}
	s.consts = append(s.consts, Const{Name: name, Value: v})
	return nil
}

// MustAdd is like Add, but panics on errors.
func (s *Set) MustAdd(name string, v widefix.Fixed) {
	if err := s.Add(name, v); err != nil {
		panic(err)
	}
}

// AddString parses value and adds it to the set.
// Base 10 values may have a fraction and an exponent, see widefix.FromString,
// other bases accept integers only, see widefix.Parse.
func (s *Set) AddString(name, value string, base int) error {
	var (
		v   widefix.Fixed
		err error
	)
	if base == 10 {
		v, err = widefix.FromString(value)
	} else {
		v, err = widefix.Parse(value, base)
	}
	if err != nil {
		return fmt.Errorf("constant %s: %w", name, err)
	}
	return s.Add(name, v)
}

// Consts returns the constants in the order they were added.
func (s *Set) Consts() []Const {
	return append([]Const(nil), s.consts...)
}

// Len returns the number of constants.
func (s *Set) Len() int {
	return len(s.consts)
}

// Literal renders v as a GLSL array constructor, like
// `uint[4](0x00000000u, 0x00000000u, 0x00000000u, 0x00000040u)`.
func Literal(v widefix.Fixed) string {
	words := v.Words()
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("0x%08xu", w)
	}
	return fmt.Sprintf("uint[%d](%s)", widefix.Size, strings.Join(parts, ", "))
}

// WriteGLSL writes the constants as a GLSL include file.
// FIX_SIZE and FIX_FRAC_BITS describe the layout to the shader.
func (s *Set) WriteGLSL(w io.Writer) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// %s\n\n", header)
	fmt.Fprintf(&b, "#ifndef FIX_SIZE\n#define FIX_SIZE %d\n#define FIX_FRAC_BITS %d\n#endif\n", widefix.Size, widefix.FracBits)
	for _, c := range s.consts {
		fmt.Fprintf(&b, "\n// %s = %s\n", c.Name, c.Value)
		fmt.Fprintf(&b, "const uint %s[%d] = %s;\n", c.Name, widefix.Size, Literal(c.Value))
	}
	_, err := w.Write(b.Bytes())
	return err
}

// WriteGo writes the constants as a Go source file of package pkg.
// Every constant becomes a package level variable initialized with widefix.FromWords.
func (s *Set) WriteGo(w io.Writer, pkg string) error {
	if !identRe.MatchString(pkg) {
		return fmt.Errorf("invalid package name %q", pkg)
	}
	out := jen.NewFile(pkg)
	out.HeaderComment(header)
	for _, c := range s.consts {
		words := c.Value.Words()
		values := make([]jen.Code, len(words))
		for i, w := range words {
			values[i] = jen.Id(fmt.Sprintf("0x%08x", w))
		}
		out.Commentf("%s is %s.", c.Name, c.Value)
		out.Var().Id(c.Name).Op("=").Qual(widefixPath, "FromWords").Call(
			jen.Index(jen.Lit(widefix.Size)).Uint32().Values(values...),
		)
	}
	return out.Render(w)
}
