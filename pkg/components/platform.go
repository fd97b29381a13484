package components

// PlatformComponent 标记静态平台（地面和悬空平台）
type PlatformComponent struct{}
