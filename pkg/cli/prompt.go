package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
)

// prompter reads interactive answers during a review session
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskYesNo asks a yes/no question and keeps asking until it gets one
func (p *prompter) AskYesNo(question string) (bool, error) {
	for {
		p.printf("%s (y/n): ", question)

		line, err := p.readLine()
		if err != nil {
			return false, goerr.Wrap(err, "failed to read answer")
		}

		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			p.printf("Please answer y or n\n")
		}
	}
}

// AskStoryPoints asks for a story point estimate. An empty answer skips
// the estimate and returns nil.
func (p *prompter) AskStoryPoints() (*int, error) {
	scale := model.StoryPointScale()
	labels := make([]string, 0, len(scale))
	for _, v := range scale {
		labels = append(labels, strconv.Itoa(v))
	}

	for {
		p.printf("Story points (%s, empty to skip): ", strings.Join(labels, ", "))

		line, err := p.readLine()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read story points")
		}
		if line == "" {
			return nil, nil
		}

		points, err := strconv.Atoi(line)
		if err != nil || !model.IsValidStoryPoints(points) {
			p.printf("Please pick a value from the scale\n")
			continue
		}

		return &points, nil
	}
}
