// SPDX-License-Identifier: MIT

// Package document assembles rendered task statements into per-variant PDF
// files: one page per variant, a variant header, then each task heading and
// its monospaced body. Output files are named variant_N.pdf inside the
// requested directory.
package document
