package images

import (
	"strings"

	"github.com/pkg/errors"
)

// Transform is a pure mapping from one raster to a freshly allocated one.
// Implementations never mutate their input.
type Transform func(src *Raster) (*Raster, error)

// Catalog errors.
var (
	// ErrUnknownTransform is returned when a slug does not name a catalog entry.
	ErrUnknownTransform = errors.New("unknown transform")
	// ErrSelectionOutOfRange is returned for a menu index outside [1, N].
	ErrSelectionOutOfRange = errors.New("selection out of range")
)

// Slugs of the catalog entries.
const (
	SlugRedFilter       = "red-filter"
	SlugFlipHorizontal  = "flip-horizontal"
	SlugFlipVertical    = "flip-vertical"
	SlugRotateClockwise = "rotate-clockwise"
	SlugCartoonize      = "cartoonize"
	SlugScaleUp         = "scale-up"
	SlugScaleDown       = "scale-down"
	SlugLeaveColor      = "leave-color"
	SlugBlackWhite      = "black-white"
	SlugNegative        = "negative"
)

// Entry binds a human-readable name and a stable slug to a transform.
type Entry struct {
	// Name is shown in the menu.
	Name string `json:"name"`
	// Slug is the identifier used on the command line.
	Slug string `json:"slug"`
	// Apply runs the transform. It is only invoked on demand.
	Apply Transform `json:"-"`
}

// Catalog is the fixed table of transforms with their thresholds bound.
type Catalog struct {
	entries []Entry
	menu    []Entry
}

// NewCatalog builds the catalog with the thresholds taken from opts.
//
// Arguments:
// - opts: Thresholds for the parameterized transforms.
//
// Returns:
// - The catalog.
// - An error if opts fails validation.
//
// @example
// cat, err := NewCatalog(DefaultOptions())
// entry, err := cat.Select(5) // Cartoonize
func NewCatalog(opts Options) (*Catalog, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}

	menu := []Entry{
		{Name: "Red filter", Slug: SlugRedFilter, Apply: RedFilter},
		{Name: "Flip horizontal", Slug: SlugFlipHorizontal, Apply: FlipHorizontal},
		{Name: "Flip vertical", Slug: SlugFlipVertical, Apply: FlipVertical},
		{Name: "Rotate clockwise", Slug: SlugRotateClockwise, Apply: RotateClockwise},
		{Name: "Cartoonize", Slug: SlugCartoonize, Apply: func(src *Raster) (*Raster, error) {
			return Cartoonize(src, opts.CartoonThreshold)
		}},
		{Name: "Scale up", Slug: SlugScaleUp, Apply: ScaleUp},
		{Name: "Scale down", Slug: SlugScaleDown, Apply: ScaleDown},
		{Name: "Leave color", Slug: SlugLeaveColor, Apply: func(src *Raster) (*Raster, error) {
			return LeaveColor(src, opts.RedFloor, opts.OtherCeiling)
		}},
		{Name: "Black & white", Slug: SlugBlackWhite, Apply: func(src *Raster) (*Raster, error) {
			return BlackWhite(src, opts.BlackWhiteThreshold)
		}},
	}

	// Negative is addressable by slug but not part of the numbered menu.
	entries := append(append([]Entry(nil), menu...), Entry{Name: "Negative", Slug: SlugNegative, Apply: Negative})

	return &Catalog{entries: entries, menu: menu}, nil
}

// Entries returns every transform, menu entries first.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Menu returns the numbered menu in display order.
func (c *Catalog) Menu() []Entry {
	return append([]Entry(nil), c.menu...)
}

// Select returns the menu entry for a 1-based selection.
func (c *Catalog) Select(n int) (Entry, error) {
	if n < 1 || n > len(c.menu) {
		return Entry{}, errors.Wrapf(ErrSelectionOutOfRange, "%d not in [1, %d]", n, len(c.menu))
	}
	return c.menu[n-1], nil
}

// Lookup finds an entry by slug. Matching ignores case and surrounding space.
func (c *Catalog) Lookup(slug string) (Entry, error) {
	s := strings.ToLower(strings.TrimSpace(slug))
	for _, e := range c.entries {
		if e.Slug == s {
			return e, nil
		}
	}
	return Entry{}, errors.Wrapf(ErrUnknownTransform, "%q", slug)
}

// Resolve turns a list of slugs into a single chained transform applied left
// to right.
func (c *Catalog) Resolve(slugs []string) (Transform, error) {
	if len(slugs) == 0 {
		return nil, errors.Wrap(ErrUnknownTransform, "no transform given")
	}
	steps := make([]Transform, 0, len(slugs))
	for _, s := range slugs {
		e, err := c.Lookup(s)
		if err != nil {
			return nil, err
		}
		steps = append(steps, e.Apply)
	}
	return Chain(steps...), nil
}

// Chain composes transforms left to right. An empty chain returns a copy of
// its input. The first error aborts the chain.
func Chain(steps ...Transform) Transform {
	return func(src *Raster) (*Raster, error) {
		if err := validate("chain", src, 0, 0); err != nil {
			return nil, err
		}
		cur := src.Clone()
		for i, step := range steps {
			next, err := step(cur)
			if err != nil {
				return nil, errors.Wrapf(err, "step %d", i+1)
			}
			cur = next
		}
		return cur, nil
	}
}
