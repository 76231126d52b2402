package game

import (
	"bytes"
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	pongaudio "github.com/gonewx/pong/internal/audio"
)

// SoundID 音效标识
type SoundID string

const (
	SoundPaddleHit SoundID = "paddle_hit"
	SoundWallHit   SoundID = "wall_hit"
	SoundScore     SoundID = "score"
)

// AudioManager 音效管理器
//
// 职责：
//   - 启动时合成所有音效并创建播放器
//   - 按 SettingsManager 中的开关和音量播放
//   - 实现 EffectSink，把比赛事件映射为音效
//
// audioContext 为 nil 或加载失败的音效会静默跳过，不影响比赛。
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager // 可为 nil（使用默认音量）
	soundPlayers    map[SoundID]*audio.Player
}

// NewAudioManager 创建音效管理器
//
// 参数：
//   - audioContext: 全局音频上下文，可为 nil（静音）
//   - sm: 设置管理器，可为 nil
//
// 返回：
//   - *AudioManager: 尚未加载音效的管理器，需调用 LoadSounds
func NewAudioManager(audioContext *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    audioContext,
		settingsManager: sm,
		soundPlayers:    make(map[SoundID]*audio.Player),
	}
}

// SoundBank 合成全部音效
//
// 参数：
//   - sampleRate: 采样率（Hz），必须与音频上下文一致
//
// 返回：
//   - map[SoundID][]byte: 音效ID -> WAV 文件内容
func SoundBank(sampleRate int) map[SoundID][]byte {
	return map[SoundID][]byte{
		SoundPaddleHit: pongaudio.PaddleHitSound(sampleRate),
		SoundWallHit:   pongaudio.WallHitSound(sampleRate),
		SoundScore:     pongaudio.ScoreSound(sampleRate),
	}
}

// DecodeSound 把 WAV 数据解码为可播放的流（不重采样）
func DecodeSound(data []byte) (*wav.Stream, error) {
	stream, err := wav.DecodeWithoutResampling(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode WAV: %w", err)
	}
	return stream, nil
}

// LoadSounds 合成并加载所有音效
//
// 单个音效失败不影响其他音效，所有错误合并后返回。
// audioContext 为 nil 时什么都不做。
func (am *AudioManager) LoadSounds() error {
	if am.audioContext == nil {
		log.Printf("[AudioManager] No audio context, sounds disabled")
		return nil
	}

	var errs []error
	for id, data := range SoundBank(am.audioContext.SampleRate()) {
		stream, err := DecodeSound(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("sound %s: %w", id, err))
			continue
		}

		player, err := am.audioContext.NewPlayer(stream)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to create audio player for %s: %w", id, err))
			continue
		}
		am.soundPlayers[id] = player
	}

	log.Printf("[AudioManager] Loaded %d sounds", len(am.soundPlayers))
	return errors.Join(errs...)
}

// PlaySound 从头播放音效
//
// 返回：
//   - bool: 是否真的播放了（音效关闭或未加载时返回 false）
func (am *AudioManager) PlaySound(id SoundID) bool {
	if !am.SoundEnabled() {
		return false
	}

	player, ok := am.soundPlayers[id]
	if !ok {
		return false
	}

	player.SetVolume(am.GetSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", id, err)
	}
	player.Play()
	return true
}

// SoundEnabled 返回音效开关
func (am *AudioManager) SoundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// SetSoundVolume 设置音效音量并应用到已加载的播放器
func (am *AudioManager) SetSoundVolume(volume float64) {
	volume = clampVolume(volume)
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(volume)
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}

// WallHit 实现 EffectSink
func (am *AudioManager) WallHit() {
	am.PlaySound(SoundWallHit)
}

// PaddleHit 实现 EffectSink
func (am *AudioManager) PaddleHit() {
	am.PlaySound(SoundPaddleHit)
}

// Scored 实现 EffectSink，双方得分使用同一音效
func (am *AudioManager) Scored(Side) {
	am.PlaySound(SoundScore)
}
