package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// MatchRecord 历史战绩
//
// 保存内容：
//   - 双方获胜局数
//   - 最近一局的比分和时间
type MatchRecord struct {
	PlayerWins      int       `yaml:"playerWins"`
	AIWins          int       `yaml:"aiWins"`
	LastPlayerScore int       `yaml:"lastPlayerScore"`
	LastAIScore     int       `yaml:"lastAIScore"`
	LastPlayedAt    time.Time `yaml:"lastPlayedAt"`
}

// MatchesPlayed 返回已完成的比赛局数
func (r *MatchRecord) MatchesPlayed() int {
	return r.PlayerWins + r.AIWins
}

// RecordManager 战绩管理器
//
// 职责：
//   - 记录每局比赛的结果
//   - 通过 gdata 持久化（YAML 格式，与设置一致）
//
// gdataManager 为 nil 时只在内存中记录。
type RecordManager struct {
	gdataManager *gdata.Manager
	record       *MatchRecord
	now          func() time.Time
}

const (
	recordObject   = "records"
	recordProperty = "matches"
)

// NewRecordManager 创建战绩管理器并加载已保存的战绩
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（仅内存）
//
// 返回：
//   - *RecordManager: 战绩管理器，加载失败时从零开始
func NewRecordManager(gdataManager *gdata.Manager) *RecordManager {
	rm := &RecordManager{
		gdataManager: gdataManager,
		record:       &MatchRecord{},
		now:          time.Now,
	}

	if err := rm.Load(); err != nil {
		log.Printf("[RecordManager] Warning: Failed to load records: %v (starting fresh)", err)
	}

	return rm
}

// Load 从 gdata 加载战绩
func (rm *RecordManager) Load() error {
	rm.record = &MatchRecord{}

	if rm.gdataManager == nil || !rm.gdataManager.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}

	data, err := rm.gdataManager.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	var loaded MatchRecord
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal records: %w", err)
	}
	if loaded.PlayerWins < 0 || loaded.AIWins < 0 {
		return fmt.Errorf("invalid records: negative win count (%d, %d)", loaded.PlayerWins, loaded.AIWins)
	}

	rm.record = &loaded
	log.Printf("[RecordManager] Records loaded: player %d, AI %d", loaded.PlayerWins, loaded.AIWins)
	return nil
}

// Save 保存战绩到 gdata
func (rm *RecordManager) Save() error {
	if rm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(rm.record)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if err := rm.gdataManager.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	log.Printf("[RecordManager] Records saved")
	return nil
}

// RecordMatch 记录一局已结束的比赛
//
// 参数：
//   - winner: 获胜方
//   - playerScore, aiScore: 最终比分
func (rm *RecordManager) RecordMatch(winner Side, playerScore, aiScore int) {
	switch winner {
	case SidePlayer:
		rm.record.PlayerWins++
	case SideAI:
		rm.record.AIWins++
	}
	rm.record.LastPlayerScore = playerScore
	rm.record.LastAIScore = aiScore
	rm.record.LastPlayedAt = rm.now()

	log.Printf("[RecordManager] Match recorded: %s wins %d-%d (total %d-%d)",
		winner, playerScore, aiScore, rm.record.PlayerWins, rm.record.AIWins)
}

// GetRecord 返回当前战绩
func (rm *RecordManager) GetRecord() *MatchRecord {
	return rm.record
}
