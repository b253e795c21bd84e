// Package types defines the catalog entity records (Item, Staff, Customer,
// Transaction), the ordered Record field mapping shared by both persistence
// encodings, the standard error types, and the catalog configuration for the
// Stockroom system.
package types
