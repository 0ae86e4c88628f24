// Package textgen generates placeholder text themed after a domain name.
package textgen

import (
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/pagescrape"
)

var commonWords = []string{
	"the", "and", "to", "of", "in", "for", "our", "we",
	"with", "you", "your", "on", "is", "are", "this", "that",
}

// genericWords are used when the domain matches no category.
var genericWords = []string{
	"welcome", "service", "about", "contact",
	"information", "quality", "professional", "experience",
}

// Category is a themed word list selected by a keyword in the domain.
type Category struct {
	Keyword string
	Words   []string
}

// Categories are checked in this order.
var Categories = []Category{
	{"example", []string{"sample", "test", "demo", "example", "showcase", "demonstration", "prototype", "model"}},
	{"test", []string{"testing", "validation", "verify", "check", "analyze", "evaluate", "assessment", "examination"}},
	{"demo", []string{"demonstration", "preview", "trial", "sample", "showcase", "exhibit", "presentation", "display"}},
	{"blog", []string{"article", "post", "content", "author", "read", "writing", "story", "update"}},
	{"shop", []string{"product", "price", "buy", "cart", "store", "purchase", "shopping", "offer"}},
	{"news", []string{"article", "latest", "breaking", "report", "update", "coverage", "headline", "story"}},
	{"tech", []string{"technology", "software", "digital", "innovation", "solution", "development", "system", "platform"}},
}

// WordsFor returns the vocabulary for a domain hint: the common words plus
// the words of every category whose keyword appears in the hint, ignoring
// case. Categories accumulate, so "techblog" gets both tech and blog
// words. A hint matching no category gets generic business words instead.
// Each word appears once, in order of first appearance.
func WordsFor(domainHint string) []string {
	hint := strings.ToLower(domainHint)

	seen := make(map[string]bool)
	var words []string
	add := func(list []string) {
		for _, w := range list {
			if !seen[w] {
				seen[w] = true
				words = append(words, w)
			}
		}
	}

	add(commonWords)
	matched := false
	for _, c := range Categories {
		if strings.Contains(hint, c.Keyword) {
			add(c.Words)
			matched = true
		}
	}
	if !matched {
		add(genericWords)
	}
	return words
}

// Generator builds random sentences, paragraphs and headings.
// A Generator is not safe for concurrent use.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator creates a Generator drawing from src. Passing a seeded
// source makes the output reproducible; nil uses a randomly seeded source.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{rnd: rand.New(src)}
}

// Sentence returns between minLen and maxLen words (inclusive, uniformly
// chosen) drawn with replacement from words, joined by spaces, with the
// first letter capitalized and a trailing period.
func (g *Generator) Sentence(words []string, minLen, maxLen int) (string, error) {
	if err := validate(words, minLen, maxLen); err != nil {
		return "", err
	}

	n := minLen + g.rnd.IntN(maxLen-minLen+1)
	picked := make([]string, n)
	for i := range picked {
		picked[i] = words[g.rnd.IntN(len(words))]
	}
	return capitalize(strings.Join(picked, " ")) + ".", nil
}

// Paragraph returns one to three sentences separated by single spaces.
func (g *Generator) Paragraph(words []string, minLen, maxLen int) (string, error) {
	if err := validate(words, minLen, maxLen); err != nil {
		return "", err
	}

	n := 1 + g.rnd.IntN(3)
	sentences := make([]string, n)
	for i := range sentences {
		s, err := g.Sentence(words, minLen, maxLen)
		if err != nil {
			return "", err
		}
		sentences[i] = s
	}
	return strings.Join(sentences, " "), nil
}

// Heading returns a single sentence of minWords to maxWords words from the
// vocabulary of domainHint.
func (g *Generator) Heading(domainHint string, minWords, maxWords int) (string, error) {
	return g.Sentence(WordsFor(domainHint), minWords, maxWords)
}

func validate(words []string, minLen, maxLen int) error {
	if len(words) == 0 {
		return pagescrape.Errorf(pagescrape.EINVALID, "word list required")
	}
	if minLen < 1 {
		return pagescrape.Errorf(pagescrape.EINVALID, "minimum length must be at least 1, got %d", minLen)
	}
	if maxLen < minLen {
		return pagescrape.Errorf(pagescrape.EINVALID, "maximum length %d is below minimum %d", maxLen, minLen)
	}
	return nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
