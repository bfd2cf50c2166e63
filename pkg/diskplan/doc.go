// Package diskplan 提供磁盘迁移计划的纯计算逻辑
//
// 包含三部分：
//   - 容量档位解析：把源磁盘大小映射到下一个容量档位（32/64/128/256/512/1024/2048 GB）
//   - 磁盘命名：根据虚拟机名称生成新磁盘名称
//   - 目标解析：根据可选的覆盖值解析目标订阅和资源组
//
// 所有函数都是纯函数，不依赖任何外部状态，便于单独测试。
//
// 使用方式：
//
//	size, err := diskplan.ResolveTier(100)
//	// size: 128
//
//	name := diskplan.OSDiskName("testvm1")
//	// name: "testvm1-osdisk"
//
//	target := diskplan.ResolveTarget("sub-a", "rg-a", "", "")
//	// target: {SubscriptionID: "sub-a", ResourceGroupName: "rg-a"}
package diskplan
