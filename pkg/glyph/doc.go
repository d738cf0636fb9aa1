// Package glyph assigns a map glyph to every resolved colour name.
//
// Known colours are offered a default from a suggestion table and the user
// may accept it with an empty answer. Computed #RRGGBB colours have no
// default and are asked again until an answer is given. Registry memoizes the
// answers so each colour is asked at most once per conversion.
package glyph
