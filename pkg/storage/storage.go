package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// BlobStorage define a interface para guarda de binários opacos
// (assinaturas de clientes em pedidos pendentes). O core guarda apenas
// a referência retornada.
type BlobStorage interface {
	// Save persiste o conteúdo e retorna a referência recuperável
	Save(ctx context.Context, name string, data []byte) (string, error)

	// Delete descarta o conteúdo da referência; referência inexistente
	// não é erro
	Delete(ctx context.Context, ref string) error
}

// LocalStorage implementa BlobStorage gravando no sistema de arquivos
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage cria um storage local no diretório informado
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "uploads"
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório de uploads: %w", err)
	}

	return &LocalStorage{baseDir: baseDir}, nil
}

// Save implementa BlobStorage.Save
func (s *LocalStorage) Save(_ context.Context, name string, data []byte) (string, error) {
	fileName := fmt.Sprintf("%s-%s", uuid.New().String(), filepath.Base(name))
	path := filepath.Join(s.baseDir, fileName)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("erro ao gravar arquivo: %w", err)
	}

	return path, nil
}

// Delete implementa BlobStorage.Delete
func (s *LocalStorage) Delete(_ context.Context, ref string) error {
	if err := os.Remove(ref); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("erro ao remover arquivo: %w", err)
	}
	return nil
}
