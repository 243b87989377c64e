// Package utils provides common utility functions for the catalog service.
// It holds the type conversion helpers used to read loosely typed storefront
// feeds, where the same field may arrive as a string, a number or a list.
package utils
