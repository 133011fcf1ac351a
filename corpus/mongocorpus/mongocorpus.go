/*
Package mongocorpus provides a corpus.Source that uses a MongoDB database
as backend, and the means to write a corpus into one.

The vocabulary is stored in a words collection, with a document per word
whose _id is its 1-based position. Every corpus document is stored in a
documents collection, with its split, its 1-based position in the split,
its label and the 1-based positions of the words it contains.
*/
package mongocorpus

import (
	"context"
	"fmt"

	"github.com/pbanos/wordtree/corpus"
	"github.com/pbanos/wordtree/feature"
	"github.com/pbanos/wordtree/logger"
	"go.uber.org/zap"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	wordsCollectionName     = "words"
	documentsCollectionName = "documents"
	// MaxDocumentInsertionsPerCall is the maximum number of MongoDB
	// documents inserted with a single call
	MaxDocumentInsertionsPerCall = 1000
)

type wordDoc struct {
	ID   int    `bson:"_id"`
	Word string `bson:"word"`
}

type documentDoc struct {
	Split    string `bson:"split"`
	Position int    `bson:"position"`
	Label    string `bson:"label"`
	Words    []int  `bson:"words"`
}

type source struct {
	session *mgo.Session
}

/*
Open takes a MongoDB database session and returns a corpus.Source that
works on the default database for that session.
*/
func Open(session *mgo.Session) corpus.Source {
	return &source{session}
}

func (s *source) Load(ctx context.Context) (*corpus.Corpus, error) {
	db := s.session.DB("")
	var words []wordDoc
	if err := db.C(wordsCollectionName).Find(nil).Sort("_id").All(&words); err != nil {
		return nil, fmt.Errorf("listing words: %w", err)
	}
	c := &corpus.Corpus{Vocabulary: make(feature.Vocabulary, 0, len(words))}
	for _, w := range words {
		c.Vocabulary = append(c.Vocabulary, w.Word)
	}
	for _, name := range corpus.Splits {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		split, _ := c.Split(name)
		var occurrences []corpus.Occurrence
		iter := db.C(documentsCollectionName).Find(bson.M{"split": name}).Sort("position").Iter()
		for {
			var doc documentDoc
			if !iter.Next(&doc) {
				break
			}
			split.Labels = append(split.Labels, feature.Label(doc.Label))
			for _, w := range doc.Words {
				occurrences = append(occurrences, corpus.Occurrence{Document: doc.Position, Word: w})
			}
		}
		if err := iter.Close(); err != nil {
			return nil, fmt.Errorf("listing %s documents: %w", name, err)
		}
		documents, err := corpus.Sparsify(len(words), len(split.Labels), occurrences)
		if err != nil {
			return nil, fmt.Errorf("loading %s split: %w", name, err)
		}
		split.Documents = documents
		logger.FromContext(ctx).Debug("loaded split from mongodb", zap.String("split", name), zap.Int("documents", split.Count()))
	}
	return c, nil
}

/*
Write takes a context, a MongoDB session and a corpus and stores the corpus
on the default database for the session, replacing any corpus previously
stored on it.
*/
func Write(ctx context.Context, session *mgo.Session, c *corpus.Corpus) error {
	db := session.DB("")
	for _, name := range []string{wordsCollectionName, documentsCollectionName} {
		if _, err := db.C(name).RemoveAll(nil); err != nil {
			return fmt.Errorf("clearing %s: %w", name, err)
		}
	}
	index := mgo.Index{Key: []string{"split", "position"}, Unique: true, Background: true}
	if err := db.C(documentsCollectionName).EnsureIndex(index); err != nil {
		return err
	}
	docs := make([]interface{}, 0, len(c.Vocabulary))
	for i, w := range c.Vocabulary {
		docs = append(docs, wordDoc{i + 1, w})
	}
	if err := insert(ctx, db.C(wordsCollectionName), docs); err != nil {
		return fmt.Errorf("adding words: %w", err)
	}
	for _, name := range corpus.Splits {
		split, _ := c.Split(name)
		docs = make([]interface{}, 0, split.Count())
		for i, d := range split.Documents {
			dd := documentDoc{Split: name, Position: i + 1, Label: string(split.Labels[i]), Words: []int{}}
			for w, present := range d {
				if present {
					dd.Words = append(dd.Words, w+1)
				}
			}
			docs = append(docs, dd)
		}
		if err := insert(ctx, db.C(documentsCollectionName), docs); err != nil {
			return fmt.Errorf("adding %s documents: %w", name, err)
		}
		logger.FromContext(ctx).Debug("wrote split to mongodb", zap.String("split", name), zap.Int("documents", split.Count()))
	}
	return nil
}

func insert(ctx context.Context, c *mgo.Collection, docs []interface{}) error {
	for start := 0; start < len(docs); start += MaxDocumentInsertionsPerCall {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := start + MaxDocumentInsertionsPerCall
		if end > len(docs) {
			end = len(docs)
		}
		if err := c.Insert(docs[start:end]...); err != nil {
			return err
		}
	}
	return nil
}
