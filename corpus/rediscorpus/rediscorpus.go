/*
Package rediscorpus provides a corpus.Source backed by a redis DB, and the
means to write a corpus into one.

All keys share a prefix. The vocabulary is a list under PREFIX:words, the
labels of each split a list under PREFIX:SPLIT:labels and the words of the
nth document of a split a set of 1-based word positions under
PREFIX:SPLIT:n.
*/
package rediscorpus

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pbanos/wordtree/corpus"
	"github.com/pbanos/wordtree/feature"
	"github.com/pbanos/wordtree/logger"
	"go.uber.org/zap"
	"gopkg.in/redis.v5"
)

type source struct {
	rc     *redis.Client
	prefix string
}

/*
Open takes a redis client and a key prefix and returns a corpus.Source that
loads the corpus stored under the prefix.
*/
func Open(rc *redis.Client, prefix string) corpus.Source {
	return &source{rc, prefix}
}

func (s *source) Load(ctx context.Context) (*corpus.Corpus, error) {
	words, err := s.rc.LRange(wordsKey(s.prefix), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("listing words from redis: %v", err)
	}
	c := &corpus.Corpus{Vocabulary: feature.Vocabulary(words)}
	for _, name := range corpus.Splits {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		split, _ := c.Split(name)
		labels, err := s.rc.LRange(labelsKey(s.prefix, name), 0, -1).Result()
		if err != nil {
			return nil, fmt.Errorf("listing %s labels from redis: %v", name, err)
		}
		cmds := make([]*redis.StringSliceCmd, len(labels))
		_, err = s.rc.Pipelined(func(pipe *redis.Pipeline) error {
			for i := range labels {
				cmds[i] = pipe.SMembers(documentKey(s.prefix, name, i+1))
			}
			return nil
		})
		if err != nil && err != redis.Nil {
			return nil, fmt.Errorf("listing %s documents from redis: %v", name, err)
		}
		var occurrences []corpus.Occurrence
		for i, cmd := range cmds {
			members, err := cmd.Result()
			if err != nil && err != redis.Nil {
				return nil, fmt.Errorf("listing words of %s document %d from redis: %v", name, i+1, err)
			}
			for _, m := range members {
				w, err := strconv.Atoi(m)
				if err != nil {
					return nil, fmt.Errorf("parsing word of %s document %d: %v", name, i+1, err)
				}
				occurrences = append(occurrences, corpus.Occurrence{Document: i + 1, Word: w})
			}
		}
		documents, err := corpus.Sparsify(len(words), len(labels), occurrences)
		if err != nil {
			return nil, fmt.Errorf("loading %s split: %w", name, err)
		}
		split.Documents = documents
		for _, l := range labels {
			split.Labels = append(split.Labels, feature.Label(l))
		}
		logger.FromContext(ctx).Debug("loaded split from redis", zap.String("split", name), zap.Int("documents", split.Count()))
	}
	return c, nil
}

/*
Write takes a context, a redis client, a key prefix and a corpus and stores
the corpus under the prefix, replacing any corpus previously stored there.
*/
func Write(ctx context.Context, rc *redis.Client, prefix string, c *corpus.Corpus) error {
	keys := []string{wordsKey(prefix)}
	for _, name := range corpus.Splits {
		keys = append(keys, labelsKey(prefix, name))
		n, err := rc.LLen(labelsKey(prefix, name)).Result()
		if err != nil {
			return fmt.Errorf("counting stored %s documents in redis: %v", name, err)
		}
		for i := 1; i <= int(n); i++ {
			keys = append(keys, documentKey(prefix, name, i))
		}
	}
	if _, err := rc.Del(keys...).Result(); err != nil {
		return fmt.Errorf("clearing corpus in redis: %v", err)
	}
	_, err := rc.Pipelined(func(pipe *redis.Pipeline) error {
		if len(c.Vocabulary) > 0 {
			words := make([]interface{}, len(c.Vocabulary))
			for i, w := range c.Vocabulary {
				words[i] = w
			}
			pipe.RPush(wordsKey(prefix), words...)
		}
		for _, name := range corpus.Splits {
			split, _ := c.Split(name)
			if split.Count() == 0 {
				continue
			}
			labels := make([]interface{}, len(split.Labels))
			for i, l := range split.Labels {
				labels[i] = string(l)
			}
			pipe.RPush(labelsKey(prefix, name), labels...)
			for i, d := range split.Documents {
				var members []interface{}
				for w, present := range d {
					if present {
						members = append(members, w+1)
					}
				}
				if len(members) > 0 {
					pipe.SAdd(documentKey(prefix, name, i+1), members...)
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("storing corpus in redis: %v", err)
	}
	logger.FromContext(ctx).Debug("wrote corpus to redis", zap.String("prefix", prefix), zap.Int("words", len(c.Vocabulary)))
	return ctx.Err()
}

func wordsKey(prefix string) string {
	return fmt.Sprintf("%s:words", prefix)
}

func labelsKey(prefix, split string) string {
	return fmt.Sprintf("%s:%s:labels", prefix, split)
}

func documentKey(prefix, split string, n int) string {
	return fmt.Sprintf("%s:%s:%d", prefix, split, n)
}
