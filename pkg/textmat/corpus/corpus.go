package corpus

// Document is one unit of text in a corpus.
// ID is the document's position in corpus order.
type Document struct {
	ID   int
	Text string
}

// Corpus is an ordered collection of documents. Transforms produce a new
// Corpus with the same document count and order; a Corpus value is never
// mutated in place.
type Corpus struct {
	docs []Document
}

// New creates a corpus from raw document texts, assigning IDs in order.
func New(texts []string) Corpus {
	docs := make([]Document, len(texts))
	for i, text := range texts {
		docs[i] = Document{ID: i, Text: text}
	}
	return Corpus{docs: docs}
}

// Len returns the number of documents.
func (c Corpus) Len() int {
	return len(c.docs)
}

// Doc returns the document at position i in corpus order.
func (c Corpus) Doc(i int) Document {
	return c.docs[i]
}

// Texts returns a copy of all document texts in corpus order.
func (c Corpus) Texts() []string {
	texts := make([]string, len(c.docs))
	for i, d := range c.docs {
		texts[i] = d.Text
	}
	return texts
}

// Transform is a pure text rewrite applied to a single document.
type Transform func(string) string

// Apply runs one transform over every document and returns the resulting
// corpus. Document count, order, and IDs are preserved.
func (c Corpus) Apply(t Transform) Corpus {
	docs := make([]Document, len(c.docs))
	for i, d := range c.docs {
		docs[i] = Document{ID: d.ID, Text: t(d.Text)}
	}
	return Corpus{docs: docs}
}

// Pipeline is a fixed ordered sequence of transforms.
type Pipeline []Transform

// Run applies every transform in order and returns the cleaned corpus.
func (p Pipeline) Run(c Corpus) Corpus {
	out := c
	for _, t := range p {
		out = out.Apply(t)
	}
	return out
}
