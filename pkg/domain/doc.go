/*
Package domain contains the core data model of the vaultmap pipeline.

It defines the values that flow between the pipeline stages and is kept
free of I/O, prompting and persistence so every stage can be tested alone.

# Key Entities

  - ColorCode: a raw packed colour token as exported by the sprite editor (0xAABBGGRR).
  - ColorName: a palette name, the Transparent sentinel, or a computed #RRGGBB literal.
  - Glyph: the text a colour is drawn with inside the MAP block.
  - Grid: a rectangular sequence of rows; every stage produces a new Grid.
  - Suggestion: a default glyph and the feature it usually stands for.
*/
package domain
