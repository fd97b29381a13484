//go:build mobile

// Package mobile 提供 gomobile bind 入口
//
// 使用 ebitenmobile bind -tags mobile 构建 Android/iOS 库。
// 移动端没有磁盘上的关卡配置文件，App 会回退到默认配置；
// 触屏按区域映射为左/右/跳/射击输入。
package mobile

import (
	"github.com/gonewx/starcatch/pkg/app"
	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
	})
	if err != nil {
		panic(err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，gomobile bind 需要至少一个导出符号
func Dummy() {}
