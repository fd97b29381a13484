//go:build mobile

package utils

// IsMobile 移动端编译时返回 true，菜单和关卡据此显示触屏分区提示
func IsMobile() bool {
	return true
}
