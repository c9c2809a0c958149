/**
 * Copyright (c) 2026, The Eventual Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package store_test

import (
	"github.com/everdrift/eventual/store"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	var s *store.Store

	BeforeEach(func() {
		s = store.New()
	})

	It("creates records under fresh IDs and reads them back", func() {
		id := s.Create(store.Record{Title: "first"})
		Expect(id).ShouldNot(BeEmpty())

		r, ok := s.Read(id)
		Expect(ok).Should(BeTrue())
		Expect(r.ID).Should(Equal(id))
		Expect(r.Title).Should(Equal("first"))
		Expect(r.CreatedAt.IsZero()).Should(BeFalse())

		other := s.Create(store.Record{Title: "second"})
		Expect(other).ShouldNot(Equal(id))
	})

	It("reports a missing record on Read", func() {
		_, ok := s.Read(store.ID("no-such-id"))
		Expect(ok).Should(BeFalse())
	})

	It("updates a record through a transform, preserving identity", func() {
		id := s.Create(store.Record{Title: "draft"})
		created, _ := s.Read(id)

		updated, ok := s.Update(id, func(r store.Record) store.Record {
			r.Title = "final"
			r.Tags = append(r.Tags, "done")
			return r
		})
		Expect(ok).Should(BeTrue())
		Expect(updated.Title).Should(Equal("final"))
		Expect(updated.ID).Should(Equal(id))
		Expect(updated.CreatedAt).Should(Equal(created.CreatedAt))

		r, _ := s.Read(id)
		Expect(r).Should(Equal(updated))
	})

	It("does not invoke the transform for a missing record", func() {
		calls := 0
		_, ok := s.Update(store.ID("no-such-id"), func(r store.Record) store.Record {
			calls++
			return r
		})
		Expect(ok).Should(BeFalse())
		Expect(calls).Should(Equal(0))
	})

	It("deletes records and reports whether they existed", func() {
		id := s.Create(store.Record{Title: "doomed"})
		Expect(s.Delete(id)).Should(BeTrue())
		Expect(s.Delete(id)).Should(BeFalse())

		_, ok := s.Read(id)
		Expect(ok).Should(BeFalse())
		Expect(s.Len()).Should(BeZero())
	})

	It("lists all records in insertion order", func() {
		first := s.Create(store.Record{Title: "one"})
		second := s.Create(store.Record{Title: "two"})
		third := s.Create(store.Record{Title: "three"})

		titles := func() []string {
			var out []string
			for _, r := range s.ListAll() {
				out = append(out, r.Title)
			}
			return out
		}
		Expect(titles()).Should(Equal([]string{"one", "two", "three"}))

		// Deleting from the middle keeps the rest in order; updates do not reorder.
		Expect(s.Delete(second)).Should(BeTrue())
		_, ok := s.Update(first, func(r store.Record) store.Record {
			r.Title = "one updated"
			return r
		})
		Expect(ok).Should(BeTrue())
		Expect(titles()).Should(Equal([]string{"one updated", "three"}))
		_ = third
	})

	It("lists records by tag in insertion order", func() {
		s.Create(store.Record{Title: "a", Tags: []string{"urgent", "work"}})
		s.Create(store.Record{Title: "b", Tags: []string{"home"}})
		s.Create(store.Record{Title: "c", Tags: []string{"urgent"}})

		var titles []string
		for _, r := range s.ListByTag("urgent") {
			titles = append(titles, r.Title)
		}
		Expect(titles).Should(Equal([]string{"a", "c"}))

		Expect(s.ListByTag("missing")).Should(BeEmpty())
	})

	It("marshals records to JSON", func() {
		id := s.Create(store.Record{Title: "note", Tags: []string{"t1"}})
		r, _ := s.Read(id)

		data, err := r.MarshalJSON()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(data)).Should(MatchJSON(`{
			"id": "` + string(id) + `",
			"title": "note",
			"tags": ["t1"],
			"createdAt": "` + r.CreatedAt.Format("2006-01-02T15:04:05.999999999Z07:00") + `"
		}`))
	})
})
