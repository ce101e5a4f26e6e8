// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/FlamoDynamo/demo-0002-algolib/command/registry-cli/rpccalls"
	"github.com/FlamoDynamo/demo-0002-algolib/docindex"
)

func runDocument(c *cli.Context) error {

	doc := rpccalls.DocumentData{
		Year:    c.Uint64("year"),
		Content: c.String("content"),
	}

	var err error
	if doc.Id, err = checkString(c, "id"); nil != err {
		return err
	}
	if doc.Title, err = checkString(c, "title"); nil != err {
		return err
	}
	if doc.Author, err = checkString(c, "author"); nil != err {
		return err
	}
	if doc.Field, err = checkString(c, "field"); nil != err {
		return err
	}
	if 0 == doc.Year {
		return fmt.Errorf("year is required")
	}

	m, client, err := connect(c, true)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AddDocument(doc)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSearch(c *cli.Context) error {

	criteria := docindex.Criteria{}
	if c.IsSet("field") {
		field := c.String("field")
		criteria.Field = &field
	}
	if c.IsSet("author") {
		author := c.String("author")
		criteria.Author = &author
	}
	if c.IsSet("year") {
		year := c.Uint64("year")
		criteria.Year = &year
	}
	if nil == criteria.Field && nil == criteria.Author && nil == criteria.Year {
		return ErrMissingCriteria
	}

	m, client, err := connect(c, false)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Search(criteria)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runContent(c *cli.Context) error {

	id, err := checkString(c, "id")
	if nil != err {
		return err
	}

	m, client, err := connect(c, true)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.DocumentContent(id, c.Uint64("cost"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
