package diskplan

import "fmt"

// OSDiskName 生成系统盘名称（格式：{vmName}-osdisk）
func OSDiskName(vmName string) string {
	return vmName + "-osdisk"
}

// DataDiskName 生成数据盘名称（格式：{vmName}-datadisk0{index}）
// index 从 1 开始，按虚拟机挂载顺序编号
// 注意：前缀 0 是字面量，不做补齐，index >= 10 时会生成 "datadisk010" 这样的名称
func DataDiskName(vmName string, index int) string {
	return fmt.Sprintf("%s-datadisk0%d", vmName, index)
}
