package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// RunRecords 跨会话保存的成绩
type RunRecords struct {
	BestScore  int `yaml:"bestScore"`  // 历史最高分
	LastScore  int `yaml:"lastScore"`  // 上一局得分
	RunsPlayed int `yaml:"runsPlayed"` // 已完成的局数
}

// 存储路径常量
const (
	recordsObject   = "records"
	recordsProperty = "runs"
)

// RecordManager 成绩管理器
// 负责成绩的加载、更新和持久化
type RecordManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	records      RunRecords
}

// NewRecordManager 创建成绩管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，成绩只保存在内存中）
//
// 返回：
//   - *RecordManager: 成绩管理器实例
//   - error: 预留，加载失败不会阻止创建
func NewRecordManager(gdataManager *gdata.Manager) (*RecordManager, error) {
	rm := &RecordManager{gdataManager: gdataManager}

	if err := rm.Load(); err != nil {
		// 加载失败不是致命错误，从零开始
		log.Printf("[RecordManager] Warning: Failed to load records: %v (starting fresh)", err)
	}

	return rm, nil
}

// Load 从 gdata 加载成绩
func (rm *RecordManager) Load() error {
	if rm.gdataManager == nil {
		return nil
	}

	if !rm.gdataManager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}

	data, err := rm.gdataManager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	var loaded RunRecords
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal records: %w", err)
	}

	rm.records = loaded
	log.Printf("[RecordManager] Records loaded: best=%d runs=%d", loaded.BestScore, loaded.RunsPlayed)
	return nil
}

// Save 保存成绩到 gdata
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (rm *RecordManager) Save() error {
	if rm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&rm.records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if err := rm.gdataManager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// Submit 提交一局的最终得分并持久化
//
// 返回：
//   - bool: 是否刷新了最高分
func (rm *RecordManager) Submit(score int) bool {
	rm.records.RunsPlayed++
	rm.records.LastScore = score

	newBest := score > rm.records.BestScore
	if newBest {
		rm.records.BestScore = score
	}

	if err := rm.Save(); err != nil {
		log.Printf("[RecordManager] Warning: %v", err)
	}
	log.Printf("[RecordManager] Run submitted: score=%d best=%d newBest=%v", score, rm.records.BestScore, newBest)
	return newBest
}

// Records 返回当前成绩
func (rm *RecordManager) Records() RunRecords {
	return rm.records
}
