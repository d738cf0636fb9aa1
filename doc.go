/*
Package vaultmap converts Piskel C exports into Dungeon Crawl Stone Soup map blocks.

A sprite drawn in Piskel and exported as C holds one 0xAABBGGRR code per pixel.
vaultmap parses that array, names each colour from a fixed palette, lets the
user pick a glyph for every distinct colour (with defaults for the usual map
features) and prints a MAP ... ENDMAP block ready to paste into a .des vault.

# Pipeline

	parse -> resolve colours -> assign glyphs (once per colour) -> render

Every stage produces a new grid. The only state is the glyph Registry of a
single conversion, which guarantees that a colour keeps the glyph it was
first given.

# Usage

	conv := vaultmap.New(vaultmap.WithPrompter(prompt.NewTextPrompter(os.Stdin, os.Stdout)))
	res, err := conv.Convert(ctx, source)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Text)

Surfaces without a user (HTTP, MCP) use glyph.Fixed, which answers from a
table and falls back to the suggested defaults.
*/
package vaultmap
