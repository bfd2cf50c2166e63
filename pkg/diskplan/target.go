package diskplan

// MigrationTarget 迁移目标（订阅 + 资源组）
type MigrationTarget struct {
	SubscriptionID    string `json:"subscriptionID"`
	ResourceGroupName string `json:"resourceGroupName"`
}

// ResolveTarget 解析迁移目标
// targetSubscriptionID / targetResourceGroup 为空时回退到源值：
//   - 都为空 ⇒ 原地迁移
//   - 只指定目标订阅 ⇒ 在新订阅中使用同名资源组
func ResolveTarget(sourceSubscriptionID, sourceResourceGroup, targetSubscriptionID, targetResourceGroup string) MigrationTarget {
	target := MigrationTarget{
		SubscriptionID:    targetSubscriptionID,
		ResourceGroupName: targetResourceGroup,
	}
	if target.SubscriptionID == "" {
		target.SubscriptionID = sourceSubscriptionID
	}
	if target.ResourceGroupName == "" {
		target.ResourceGroupName = sourceResourceGroup
	}
	return target
}

// CrossSubscription 判断迁移是否跨订阅
func (t MigrationTarget) CrossSubscription(sourceSubscriptionID string) bool {
	return t.SubscriptionID != sourceSubscriptionID
}
