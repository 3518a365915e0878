// Package nlp pulls players, stats, superlatives and team constraints out of
// a chat utterance.
package nlp

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// EntityKind classifies a named-entity span.
type EntityKind int

const (
	EntityOther EntityKind = iota
	EntityPerson
	EntityOrganization
)

// Token is one word of the utterance with its proper-noun flag.
type Token struct {
	Text       string
	ProperNoun bool
}

// Entity is a named-entity span.
type Entity struct {
	Text string
	Kind EntityKind
}

// Analysis is the tagger's view of one utterance.
type Analysis struct {
	Tokens   []Token
	Entities []Entity
}

// Tagger tokenizes, part-of-speech tags and entity-labels text.
type Tagger interface {
	Analyze(text string) (Analysis, error)
}

// ProseTagger tags with prose's bundled averaged-perceptron models.
type ProseTagger struct{}

// Analyze implements Tagger.
func (ProseTagger) Analyze(text string) (Analysis, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return Analysis{}, fmt.Errorf("prose document: %w", err)
	}

	var a Analysis
	for _, tok := range doc.Tokens() {
		a.Tokens = append(a.Tokens, Token{
			Text:       tok.Text,
			ProperNoun: tok.Tag == "NNP" || tok.Tag == "NNPS",
		})
	}
	for _, ent := range doc.Entities() {
		a.Entities = append(a.Entities, Entity{Text: ent.Text, Kind: entityKind(ent.Label)})
	}
	return a, nil
}

// prose labels people PERSON and places GPE; club names mostly come back as
// GPE ("Manchester", "Newcastle"), so GPE counts as an organization.
func entityKind(label string) EntityKind {
	switch label {
	case "PERSON":
		return EntityPerson
	case "ORG", "GPE":
		return EntityOrganization
	default:
		return EntityOther
	}
}

// ProperNounRuns returns maximal runs of consecutive proper-noun tokens,
// each joined by single spaces.
func (a Analysis) ProperNounRuns() []string {
	var runs []string
	var chunk []string
	flush := func() {
		if len(chunk) > 0 {
			runs = append(runs, strings.Join(chunk, " "))
			chunk = chunk[:0]
		}
	}
	for _, tok := range a.Tokens {
		if tok.ProperNoun {
			chunk = append(chunk, tok.Text)
			continue
		}
		flush()
	}
	flush()
	return runs
}
