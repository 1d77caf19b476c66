// Package conv provides bounds-checked integer conversions between record
// ordinals, bitmap ids and counts.
package conv
