// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package docindex

import (
	"encoding/binary"

	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/resourcerecord"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

// Kind - which of the three document indexes
type Kind int

// the indexes
const (
	FieldKind  Kind = iota
	AuthorKind Kind = iota
	YearKind   Kind = iota
)

// Criteria - optional search terms, nil means not supplied
type Criteria struct {
	Field  *string `json:"field,omitempty"`
	Author *string `json:"author,omitempty"`
	Year   *uint64 `json:"year,omitempty"`
}

// Index - append only postings lists for documents
type Index struct {
	counts *storage.PoolHandle
	pools  [3]*storage.PoolHandle
}

// New - create an index over the posting pools of a store
func New(store *storage.Store) *Index {
	return &Index{
		counts: store.Pool.IndexCounts,
		pools: [3]*storage.PoolHandle{
			FieldKind:  store.Pool.FieldIndex,
			AuthorKind: store.Pool.AuthorIndex,
			YearKind:   store.Pool.YearIndex,
		},
	}
}

// term - one (kind, value) pair
type term struct {
	kind  Kind
	value []byte
}

func fieldTerm(field string) term {
	return term{kind: FieldKind, value: []byte(field)}
}

func authorTerm(author string) term {
	return term{kind: AuthorKind, value: []byte(author)}
}

// year values are fixed width so no separator is needed
func yearTerm(year uint64) term {
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, year)
	return term{kind: YearKind, value: value}
}

// Index - add a document id to the end of its field, author and year lists
func (ix *Index) Index(trx storage.Transaction, id string, document *resourcerecord.Document) error {
	terms := []term{
		fieldTerm(document.Field),
		authorTerm(document.Author),
		yearTerm(document.Year),
	}
	for _, t := range terms {
		if err := ix.append(trx, t, id); nil != err {
			return err
		}
	}
	return nil
}

// Search - ids matching every supplied criterion
//
// the result keeps the order of the first supplied criterion's list,
// no criteria gives an empty result
func (ix *Index) Search(trx storage.Transaction, criteria Criteria) ([]string, error) {
	terms := make([]term, 0, 3)
	if nil != criteria.Field {
		terms = append(terms, fieldTerm(*criteria.Field))
	}
	if nil != criteria.Author {
		terms = append(terms, authorTerm(*criteria.Author))
	}
	if nil != criteria.Year {
		terms = append(terms, yearTerm(*criteria.Year))
	}

	result := []string{}
	if 0 == len(terms) {
		return result, nil
	}

	result, err := ix.postings(trx, terms[0])
	if nil != err {
		return nil, err
	}

	for _, t := range terms[1:] {
		if 0 == len(result) {
			break
		}

		ids, err := ix.postings(trx, t)
		if nil != err {
			return nil, err
		}
		present := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			present[id] = struct{}{}
		}

		filtered := result[:0]
		for _, id := range result {
			if _, ok := present[id]; ok {
				filtered = append(filtered, id)
			}
		}
		result = filtered
	}
	return result, nil
}

// Postings - the raw list for one field or author value in insertion order
func (ix *Index) Postings(trx storage.Transaction, kind Kind, value string) ([]string, error) {
	if FieldKind != kind && AuthorKind != kind {
		return nil, fault.ErrInvalidIndexKind
	}
	return ix.postings(trx, term{kind: kind, value: []byte(value)})
}

// YearPostings - the raw year list in insertion order
func (ix *Index) YearPostings(trx storage.Transaction, year uint64) ([]string, error) {
	return ix.postings(trx, yearTerm(year))
}

func (ix *Index) postings(trx storage.Transaction, t term) ([]string, error) {
	pool := ix.pools[t.kind]
	n, _, err := trx.GetN(ix.counts, ix.countKey(t))
	if nil != err {
		return nil, err
	}

	ids := make([]string, 0, n)
	for i := uint64(0); i < n; i += 1 {
		id, err := trx.Get(pool, postingKey(t, i))
		if nil != err {
			return nil, err
		}
		if nil != id {
			ids = append(ids, string(id))
		}
	}
	return ids, nil
}

func (ix *Index) append(trx storage.Transaction, t term, id string) error {
	countKey := ix.countKey(t)
	n, _, err := trx.GetN(ix.counts, countKey)
	if nil != err {
		return err
	}
	trx.Put(ix.pools[t.kind], postingKey(t, n), []byte(id))
	trx.PutN(ix.counts, countKey, n+1)
	return nil
}

// count key: pool prefix ++ value
func (ix *Index) countKey(t term) []byte {
	key := make([]byte, 1, len(t.value)+1)
	key[0] = ix.pools[t.kind].Prefix()
	return append(key, t.value...)
}

// posting key: value ++ [0x00] ++ count(8 BE)
func postingKey(t term, count uint64) []byte {
	key := make([]byte, 0, len(t.value)+9)
	key = append(key, t.value...)
	if YearKind != t.kind {
		key = append(key, 0x00)
	}
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, count)
	return append(key, n...)
}
