// Package domain holds the tool's settings, document model and identifier
// handling built on shared strings.
package domain
