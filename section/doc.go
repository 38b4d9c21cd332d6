// Package section implements the fixed header/footer layout shared by every
// DATO buffer: the magic prefix, config-id byte, flags byte, root-type byte,
// alignment padding, and the root-offset slot (spec.md §3.3, §6.1).
package section
