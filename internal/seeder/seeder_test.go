package seeder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"dermatriagem-api/config"
	"dermatriagem-api/internal/domain/entity"
	"dermatriagem-api/internal/infrastructure/imagecatalog"
	"dermatriagem-api/internal/infrastructure/storage"
	"dermatriagem-api/internal/testutil"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	fail    bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: make(map[string][]byte)}
}

func (m *memoryStore) PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if m.fail {
		return "", errors.New("bucket unavailable")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[objectName] = data
	return "dermatriagem/" + objectName, nil
}

func (m *memoryStore) Client() *minio.Client {
	return nil
}

type staticImages struct {
	images []imagecatalog.Image
}

func (s *staticImages) FetchImages(ctx context.Context, limit int) []imagecatalog.Image {
	return s.images
}

func (s *staticImages) Download(ctx context.Context, url string) ([]byte, string, error) {
	return []byte("jpeg:" + url), "image/jpeg", nil
}

func seedConfig(pacientes int, docs ...string) config.SeedConfig {
	return config.SeedConfig{
		Pacientes:       pacientes,
		ImageBatchSize:  100,
		DocumentURLs:    docs,
		HTTPTimeout:     2 * time.Second,
		MaxLesoes:       3,
		MaxImagensLesao: 2,
	}
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

// unreachable returns the URL of a server that is already closed.
func unreachable() string {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

func TestRunWithUnreachableCatalog(t *testing.T) {
	db := testutil.NewDB(t)
	log := testutil.QuietLogger()
	base := unreachable()
	client := imagecatalog.NewClient(base, 2*time.Second, log)

	s := New(db, log, client, newMemoryStore(), seedConfig(12, base+"/doc.jpg"), 42)
	report, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.UnidadesSaude)
	assert.Equal(t, 3, report.Roles)
	assert.Equal(t, 5, report.Users)
	assert.Equal(t, 31, report.LocaisLesao)
	assert.Equal(t, 12, report.Pacientes)
	assert.Equal(t, 12, report.Atendimentos)
	assert.Equal(t, 12+report.Imagens, report.Fallbacks)

	var fototipos int
	for _, n := range report.Fototipos {
		fototipos += n
	}
	assert.Equal(t, 12, fototipos)

	assert.Equal(t, int64(12), count(t, db, &entity.Paciente{}))
	assert.Equal(t, int64(12), count(t, db, &entity.Atendimento{}))
	assert.Equal(t, int64(report.RegistrosLesoes), count(t, db, &entity.RegistroLesoes{}))

	var termos []entity.TermoConsentimento
	require.NoError(t, db.Order("id").Find(&termos).Error)
	require.Len(t, termos, 12)
	for i, termo := range termos {
		assert.Equal(t, fmt.Sprintf("termos/consentimento_%d_fallback.jpg", i), termo.ArquivoPath)
	}

	var imagens []entity.RegistroLesoesImagens
	require.NoError(t, db.Find(&imagens).Error)
	for _, img := range imagens {
		assert.True(t, strings.HasPrefix(img.ArquivoPath, "imagens/lesao_"), img.ArquivoPath)
		assert.True(t, strings.HasSuffix(img.ArquivoPath, "_fallback.jpg"), img.ArquivoPath)
	}

	var paciente entity.Paciente
	require.NoError(t, db.Where("cpf_paciente = ?", "10000000003").First(&paciente).Error)
	assert.Equal(t, "100000000000003", paciente.NumCartaoSUS)
	assert.Equal(t, "11000000003", paciente.TelefonePaciente)
}

func TestRunUploadsToObjectStore(t *testing.T) {
	db := testutil.NewDB(t)
	store := newMemoryStore()
	images := &staticImages{images: []imagecatalog.Image{
		{ID: "ISIC_0000001", ThumbnailURL: "https://example.test/1.jpg"},
		{ID: "ISIC_0000002", ThumbnailURL: "https://example.test/2.jpg"},
	}}

	s := New(db, testutil.QuietLogger(), images, store, seedConfig(6, "https://example.test/doc.jpg"), 7)
	report, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.Fallbacks)

	var termo entity.TermoConsentimento
	require.NoError(t, db.Order("id").First(&termo).Error)
	assert.True(t, strings.HasPrefix(termo.ArquivoPath, "dermatriagem/termos/consentimento_0_"), termo.ArquivoPath)

	var imagens []entity.RegistroLesoesImagens
	require.NoError(t, db.Find(&imagens).Error)
	assert.Len(t, imagens, report.Imagens)
	for _, img := range imagens {
		assert.True(t, strings.HasPrefix(img.ArquivoPath, "dermatriagem/imagens/lesao_"), img.ArquivoPath)
		assert.Contains(t, img.ArquivoPath, "_ISIC_000000")
	}
	assert.Len(t, store.objects, 6+report.Imagens)
}

func TestRunFallsBackWhenStoreFails(t *testing.T) {
	db := testutil.NewDB(t)
	store := newMemoryStore()
	store.fail = true

	s := New(db, testutil.QuietLogger(), &staticImages{}, store, seedConfig(3, "https://example.test/doc.jpg"), 1)
	report, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Pacientes)
	var termos []entity.TermoConsentimento
	require.NoError(t, db.Find(&termos).Error)
	for _, termo := range termos {
		assert.True(t, strings.HasSuffix(termo.ArquivoPath, "_fallback.jpg"))
	}
}

func TestRunWithUnreachableObjectStore(t *testing.T) {
	db := testutil.NewDB(t)
	log := testutil.QuietLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	store := storage.Open(ctx, config.StorageConfig{Endpoint: "127.0.0.1:1", Bucket: "dermatriagem"}, log)
	require.Nil(t, store.Client())

	images := &staticImages{images: []imagecatalog.Image{
		{ID: "ISIC_0000009", ThumbnailURL: "https://example.test/9.jpg"},
	}}
	s := New(db, log, images, store, seedConfig(4, "https://example.test/doc.jpg"), 11)
	report, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, report.Pacientes)
	assert.Equal(t, 4+report.Imagens, report.Fallbacks)

	var termos []entity.TermoConsentimento
	require.NoError(t, db.Find(&termos).Error)
	require.Len(t, termos, 4)
	for _, termo := range termos {
		assert.True(t, strings.HasSuffix(termo.ArquivoPath, "_fallback.jpg"), termo.ArquivoPath)
	}

	var imagens []entity.RegistroLesoesImagens
	require.NoError(t, db.Find(&imagens).Error)
	for _, img := range imagens {
		assert.True(t, strings.HasSuffix(img.ArquivoPath, "_fallback.jpg"), img.ArquivoPath)
	}
}

type deadlineStore struct {
	*memoryStore
	missing int
}

func (d *deadlineStore) PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	deadline, ok := ctx.Deadline()
	if !ok || time.Until(deadline) > 2*time.Second {
		d.missing++
	}
	return d.memoryStore.PutObject(ctx, objectName, reader, size, contentType)
}

func TestUploadsAreBoundedByTimeout(t *testing.T) {
	db := testutil.NewDB(t)
	store := &deadlineStore{memoryStore: newMemoryStore()}

	s := New(db, testutil.QuietLogger(), &staticImages{}, store, seedConfig(3, "https://example.test/doc.jpg"), 5)
	_, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, store.objects, 3)
	assert.Zero(t, store.missing)
}

func TestAtendimentosRotateStaff(t *testing.T) {
	db := testutil.NewDB(t)

	s := New(db, testutil.QuietLogger(), &staticImages{}, newMemoryStore(), seedConfig(7), 3)
	_, err := s.Run(context.Background())
	require.NoError(t, err)

	var atendimentos []entity.Atendimento
	require.NoError(t, db.Order("id").Find(&atendimentos).Error)
	require.Len(t, atendimentos, 7)

	var users []entity.User
	require.NoError(t, db.Preload("UnidadesSaude").Order("id").Find(&users).Error)
	require.Len(t, users, 5)

	for i, a := range atendimentos {
		user := users[i%5]
		assert.Equal(t, user.ID, a.UserID)
		assert.Equal(t, user.UnidadesSaude[0].ID, a.UnidadeSaudeID)
	}
}

func TestRunTwiceIsNotIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	log := testutil.QuietLogger()

	_, err := New(db, log, &staticImages{}, newMemoryStore(), seedConfig(4), 1).Run(context.Background())
	require.NoError(t, err)

	report, err := New(db, log, &staticImages{}, newMemoryStore(), seedConfig(4), 2).Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, report.UnidadesSaude)
	assert.Equal(t, 3, report.Roles)
	assert.Zero(t, report.Users)

	assert.Equal(t, int64(6), count(t, db, &entity.UnidadeSaude{}))
	assert.Equal(t, int64(6), count(t, db, &entity.Role{}))
	assert.Equal(t, int64(5), count(t, db, &entity.User{}))
	assert.Equal(t, int64(31), count(t, db, &entity.LocalLesao{}))
	assert.Equal(t, int64(4), count(t, db, &entity.Paciente{}))
}

func TestFakeQuestionariosRespectGates(t *testing.T) {
	f := gofakeit.New(99)

	for i := 0; i < 200; i++ {
		require.NoError(t, fakeSaudeGeral(f).Validate())
		require.NoError(t, fakeAvaliacaoFototipo(f).Validate())
		require.NoError(t, fakeHistoricoCancerPele(f).Validate())
		require.NoError(t, fakeFatoresRiscoProtecao(f).Validate())
		require.NoError(t, fakeInvestigacaoLesoesSuspeitas(f).Validate())
	}
}
