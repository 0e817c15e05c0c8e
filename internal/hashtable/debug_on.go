//go:build xqdebug

package hashtable

// 调试构建下 key 相同 lock 不同直接 panic
const fatalCollisions = true
