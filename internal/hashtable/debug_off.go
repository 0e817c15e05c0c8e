//go:build !xqdebug

package hashtable

const fatalCollisions = false
