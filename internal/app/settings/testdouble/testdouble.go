// Package testdouble provides in-memory fakes of the settings contracts.
package testdouble

import (
	"context"
	"sync"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap/zapcore"

	"github.com/murkotick/showcase-catalog-service/internal/app/settings/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/dto"
)

// ReadModel serves seeded setting rows and assets.
type ReadModel struct {
	mu     sync.Mutex
	Values map[string]string
	Assets map[string]dto.AssetDTO
}

func NewReadModel() *ReadModel {
	return &ReadModel{Values: map[string]string{}, Assets: map[string]dto.AssetDTO{}}
}

func (rm *ReadModel) StoredSettings(context.Context) (map[string]string, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	out := make(map[string]string, len(rm.Values))
	for k, v := range rm.Values {
		out[k] = v
	}
	return out, nil
}

func (rm *ReadModel) GetAsset(_ context.Context, assetID string) (*dto.AssetDTO, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	a, ok := rm.Assets[assetID]
	if !ok {
		return nil, spanner.ErrRowNotFound
	}
	return &a, nil
}

// AddBackground seeds a background asset and points the setting at it.
func (rm *ReadModel) AddBackground(id, key string) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.Assets[id] = dto.AssetDTO{AssetID: id, Kind: domain.AssetKindBackground, FilePath: key}
	rm.Values[domain.KeyBackgroundImage] = domain.FileURLPrefix + id
}

// Defaults mirrors the process defaults.
func Defaults() domain.Settings {
	return domain.Settings{
		ContactTelegramLink:    "https://t.me/support",
		MaxFileSizeMB:          50,
		AllowedImageTypes:      "image/jpeg,image/png,image/webp",
		AllowedAttachmentTypes: "application/pdf,application/zip,application/x-rar-compressed",
		LogLevel:               "INFO",
		LogMaxBytesMB:          100,
		Miniapp:                domain.DefaultMiniapp(),
		APIPort:                8000,
		CORSOrigins:            "http://localhost:5173",
		StoragePath:            "./storage",
	}
}

// Level records SetLevel calls.
type Level struct {
	Set []zapcore.Level
}

func (l *Level) SetLevel(lvl zapcore.Level) {
	l.Set = append(l.Set, lvl)
}
