package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nvr-ai/rasterfx/codec"
	"github.com/nvr-ai/rasterfx/images"
)

// prompter asks questions on out and reads one answer per line from in.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

// ask prints question and returns the trimmed answer. It returns io.EOF once
// the input is exhausted.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, styleIconInfo.Render(iconInfo)+" "+question+" ")
	if !p.scanner.Scan() {
		fmt.Fprintln(p.out)
		if err := p.scanner.Err(); err != nil {
			return "", errors.Wrap(err, "failed to read input")
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// askImage asks for a file name until one decodes.
func (p *prompter) askImage() (string, *images.Raster, error) {
	for {
		path, err := p.ask("Image file:")
		if err != nil {
			return "", nil, err
		}
		if path == "" {
			continue
		}
		r, err := codec.Decode(path)
		if err != nil {
			printWarning(p.out, "cannot open %s: %v", path, err)
			continue
		}
		return path, r, nil
	}
}

// selectEntry reads a menu number in [1, N] from the catalog menu,
// re-prompting on anything else.
func (p *prompter) selectEntry(cat *images.Catalog) (images.Entry, error) {
	n := len(cat.Menu())
	for {
		answer, err := p.ask(fmt.Sprintf("Select a number from 1-%d:", n))
		if err != nil {
			return images.Entry{}, err
		}
		choice, err := strconv.Atoi(answer)
		if err != nil {
			printWarning(p.out, "%q is not a number", answer)
			continue
		}
		entry, err := cat.Select(choice)
		if err != nil {
			printWarning(p.out, "%d is out of range", choice)
			continue
		}
		return entry, nil
	}
}
