// Package utils provides small conversion helpers shared by the configuration
// and server packages: lenient truthiness for environment flags and a
// prefix-tolerant integer parser used when normalizing listen ports.
package utils
