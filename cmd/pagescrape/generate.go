package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/textgen"
)

// Sentence lengths, in words, of generated text.
const (
	headingMinWords   = 3
	headingMaxWords   = 7
	paragraphMinWords = 6
	paragraphMaxWords = 14
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	if c.Paragraphs < 0 {
		return pagescrape.Errorf(pagescrape.EINVALID, "paragraphs must not be negative")
	}

	var src rand.Source
	if c.Seed != 0 {
		src = rand.NewPCG(c.Seed, c.Seed)
	}
	g := textgen.NewGenerator(src)

	heading, err := g.Heading(c.Domain, headingMinWords, headingMaxWords)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, heading)

	words := textgen.WordsFor(c.Domain)
	for range c.Paragraphs {
		p, err := g.Paragraph(words, paragraphMinWords, paragraphMaxWords)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, p)
	}
	return nil
}
