package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/cardforge/cardforge/internal/cards"
	"github.com/cardforge/cardforge/internal/sheet"
	"github.com/stretchr/testify/require"
)

type fixedGenerator struct {
	sheet *sheet.Sheet
	err   error
}

func (f fixedGenerator) Generate(context.Context, string) (*sheet.Sheet, error) {
	return f.sheet, f.err
}

func TestParseArgs(t *testing.T) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	opts, err := parseArgs(fs, []string{"-share", "A", "Nord", "warrior"})
	require.NoError(t, err)
	require.True(t, opts.Share)
	require.Equal(t, "A Nord warrior", opts.Prompt)

	fs = flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err = parseArgs(fs, []string{"-pretty"})
	require.Error(t, err)
}

func TestRunPrintsSheet(t *testing.T) {
	s := sheet.Default()
	var out bytes.Buffer
	err := run(context.Background(), options{Prompt: "a duelist"}, fixedGenerator{sheet: &s}, nil, &out)
	require.NoError(t, err)

	var got struct {
		Sheet sheet.Sheet `json:"sheet"`
		ID    string      `json:"id"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Equal(t, "Azhar al-Sahr", got.Sheet.Name)
	require.Empty(t, got.ID)
}

func TestRunShares(t *testing.T) {
	s := sheet.Default()
	mem := cards.NewMemoryRepository()
	svc := cards.NewService(mem)

	var out bytes.Buffer
	err := run(context.Background(), options{Prompt: "a duelist", Share: true}, fixedGenerator{sheet: &s}, svc, &out)
	require.NoError(t, err)

	var got struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	card, err := svc.Get(context.Background(), got.ID)
	require.NoError(t, err)
	require.Equal(t, "a duelist", card.Prompt)
	require.Equal(t, 1, mem.Len())
}

func TestRunSurfacesGenerationError(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), options{Prompt: "x"}, fixedGenerator{err: errors.New("provider down")}, nil, &out)
	require.EqualError(t, err, "provider down")
	require.Zero(t, out.Len())
}
