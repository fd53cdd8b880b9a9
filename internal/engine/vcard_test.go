package engine_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/engine"
)

func TestExportVCard(t *testing.T) {
	contacts := []*book.Contact{
		contact(t, "John Doe", "15.03.1990", "0501234567", "0670000000"),
		contact(t, "Jane", ""),
	}

	var buf bytes.Buffer
	require.NoError(t, engine.ExportVCard(&buf, contacts))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VCARD"))
	assert.Contains(t, out, "VERSION:4.0")
	assert.Contains(t, out, "FN:John Doe")
	assert.Contains(t, out, "TEL:0501234567")
	assert.Contains(t, out, "TEL:0670000000")
	assert.Contains(t, out, "BDAY:1990-03-15")
	assert.Contains(t, out, "FN:Jane")
	assert.Equal(t, 1, strings.Count(out, "BDAY:"), "Jane has no birthday")
}

func TestExportImport_RoundTrip(t *testing.T) {
	src := book.NewDirectory()
	src.Add(contact(t, "John", "29.02.2000", "0501234567"))
	src.Add(contact(t, "Jane", "", "0670000000", "0931112233"))

	var buf bytes.Buffer
	require.NoError(t, engine.ExportVCard(&buf, src.Contacts()))

	dst := book.NewDirectory()
	res, err := engine.ImportVCard(context.Background(), &buf, dst)
	require.NoError(t, err)
	assert.Equal(t, engine.ImportResult{Created: 2}, res)
	assert.Equal(t, src.String(), dst.String())
}

func TestImportVCard_MergesAndSkips(t *testing.T) {
	input := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:John",
		"TEL;TYPE=CELL:(050) 123-45-67",
		"TEL:+1 555 0100",
		"BDAY:19900315",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"TEL:0670000000",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:Existing",
		"TEL:0931112233",
		"BDAY:--0704",
		"END:VCARD",
		"",
	}, "\r\n")

	dir := book.NewDirectory()
	existing := contact(t, "Existing", "01.01.1980", "0931112233")
	dir.Add(existing)

	res, err := engine.ImportVCard(context.Background(), strings.NewReader(input), dir)
	require.NoError(t, err)
	assert.Equal(t, engine.ImportResult{Created: 1, Updated: 1, Skipped: 1}, res)

	john, err := dir.Find("John")
	require.NoError(t, err)
	assert.Equal(t, "Contact name: John, phones: 0501234567, birthday: 15.03.1990", john.String(),
		"Punctuation is stripped, the 8-digit number is dropped")

	// Year-less date is ignored, the previous birthday and phones remain.
	assert.Equal(t, "Contact name: Existing, phones: 0931112233, birthday: 01.01.1980", existing.String())
	assert.Equal(t, []string{"Existing", "John"}, names(dir.Contacts()))
}

func TestImportVCard_SkipsNamesWithWhitespace(t *testing.T) {
	input := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:John Smith",
		"TEL:0501234567",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:Jane",
		"TEL:0670000000",
		"END:VCARD",
		"",
	}, "\r\n")

	dir := book.NewDirectory()
	res, err := engine.ImportVCard(context.Background(), strings.NewReader(input), dir)
	require.NoError(t, err)
	assert.Equal(t, engine.ImportResult{Created: 1, Skipped: 1}, res)
	assert.Equal(t, []string{"Jane"}, names(dir.Contacts()))
}

func TestImportVCard_MalformedStream(t *testing.T) {
	input := "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Good\r\nEND:VCARD\r\nFN:Orphan\r\nEND:VCARD\r\n"

	dir := book.NewDirectory()
	res, err := engine.ImportVCard(context.Background(), strings.NewReader(input), dir)
	require.Error(t, err)
	assert.Equal(t, 1, res.Created, "Cards before the broken one are kept")
	assert.Equal(t, 1, dir.Len())
}

func TestImportVCard_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.ImportVCard(ctx, strings.NewReader("BEGIN:VCARD\r\nFN:x\r\nEND:VCARD\r\n"), book.NewDirectory())
	assert.ErrorIs(t, err, context.Canceled)
}

func names(contacts []*book.Contact) []string {
	var out []string
	for _, c := range contacts {
		out = append(out, c.Name())
	}
	return out
}
