package diskplan

import (
	"errors"
	"sort"
)

// ErrSizeOutOfRange 磁盘大小超出支持的档位范围 [1, 2048] GB
var ErrSizeOutOfRange = errors.New("disk size out of tier range [1, 2048] GB")

// tierCeilings 容量档位上限，有序，覆盖 [1, 2048] GB
var tierCeilings = []int32{32, 64, 128, 256, 512, 1024, 2048}

// ResolveTier 把源磁盘大小解析到容量档位
// 返回不小于 sizeGB 的最小档位上限，比如 100 -> 128，32 -> 32
// 对已经是档位上限的值幂等：ResolveTier(128) == 128
func ResolveTier(sizeGB int32) (int32, error) {
	if sizeGB < 1 || sizeGB > tierCeilings[len(tierCeilings)-1] {
		return 0, ErrSizeOutOfRange
	}
	i := sort.Search(len(tierCeilings), func(i int) bool {
		return tierCeilings[i] >= sizeGB
	})
	return tierCeilings[i], nil
}

// TierCeilings 返回所有容量档位上限的副本
func TierCeilings() []int32 {
	out := make([]int32, len(tierCeilings))
	copy(out, tierCeilings)
	return out
}
