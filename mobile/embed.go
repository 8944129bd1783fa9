//go:build mobile

// embed.go - 移动端数据嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把 data/ 复制到此目录：
//
//	mkdir -p mobile/data && cp data/game.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/game.yaml
var dataFS embed.FS
