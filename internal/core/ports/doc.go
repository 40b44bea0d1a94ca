// Package ports defines the interfaces the application layer depends on.
package ports
