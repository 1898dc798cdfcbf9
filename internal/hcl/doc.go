// Package hcl loads a calculation sheet from an HCL file into a populated
// sheet.Builder. Block order in the file becomes ledger insertion order,
// which is what drives evaluation.
package hcl
