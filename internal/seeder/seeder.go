// Package seeder fills a fresh database with fixtures and synthetic patients
// for development and demos.
package seeder

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"dermatriagem-api/config"
	"dermatriagem-api/internal/domain/entity"
	domainRepo "dermatriagem-api/internal/domain/repository"
	"dermatriagem-api/internal/infrastructure/imagecatalog"
	"dermatriagem-api/internal/infrastructure/metrics"
	"dermatriagem-api/internal/infrastructure/storage"
	"dermatriagem-api/internal/repository"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ImageSource lists reference lesion images and downloads files.
type ImageSource interface {
	FetchImages(ctx context.Context, limit int) []imagecatalog.Image
	Download(ctx context.Context, url string) ([]byte, string, error)
}

// Report counts the rows created by a run.
type Report struct {
	UnidadesSaude   int `json:"unidades_saude"`
	Roles           int `json:"roles"`
	Users           int `json:"users"`
	LocaisLesao     int `json:"locais_lesao"`
	Pacientes       int `json:"pacientes"`
	Atendimentos    int `json:"atendimentos"`
	RegistrosLesoes int `json:"registros_lesoes"`
	Imagens         int `json:"imagens"`
	Fallbacks       int `json:"fallbacks"`

	// Fototipos counts generated patients per Fitzpatrick type.
	Fototipos map[string]int `json:"fototipos"`
}

type staff struct {
	user           *entity.User
	unidadeSaudeID uint
}

type Seeder struct {
	db     *gorm.DB
	log    *logrus.Logger
	images ImageSource
	store  storage.ObjectStore
	cfg    config.SeedConfig
	faker  *gofakeit.Faker

	userRepo         domainRepo.UserRepository
	membershipRepo   domainRepo.MembershipRepository
	roleRepo         domainRepo.RoleRepository
	unidadeSaudeRepo domainRepo.UnidadeSaudeRepository
	pacienteRepo     domainRepo.PacienteRepository
	termoRepo        domainRepo.TermoConsentimentoRepository
	questionarioRepo domainRepo.QuestionarioRepository
	atendimentoRepo  domainRepo.AtendimentoRepository
	localLesaoRepo   domainRepo.LocalLesaoRepository
	registroRepo     domainRepo.RegistroLesoesRepository
}

// New builds a seeder. A zero randomKey seeds the faker randomly; any other
// value makes the generated data reproducible.
func New(db *gorm.DB, log *logrus.Logger, images ImageSource, store storage.ObjectStore, cfg config.SeedConfig, randomKey uint64) *Seeder {
	if cfg.MaxImagensLesao < 1 {
		cfg.MaxImagensLesao = 1
	}
	if cfg.ImageBatchSize < 1 {
		cfg.ImageBatchSize = 100
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	return &Seeder{
		db:               db,
		log:              log,
		images:           images,
		store:            store,
		cfg:              cfg,
		faker:            gofakeit.New(randomKey),
		userRepo:         repository.NewUserRepository(),
		membershipRepo:   repository.NewMembershipRepository(),
		roleRepo:         repository.NewRoleRepository(),
		unidadeSaudeRepo: repository.NewUnidadeSaudeRepository(),
		pacienteRepo:     repository.NewPacienteRepository(),
		termoRepo:        repository.NewTermoConsentimentoRepository(),
		questionarioRepo: repository.NewQuestionarioRepository(),
		atendimentoRepo:  repository.NewAtendimentoRepository(),
		localLesaoRepo:   repository.NewLocalLesaoRepository(),
		registroRepo:     repository.NewRegistroLesoesRepository(),
	}
}

// Run seeds the database. Every row commits on its own, so a failure leaves
// the rows written so far in place. The returned report reflects them.
func (s *Seeder) Run(ctx context.Context) (*Report, error) {
	report := &Report{Fototipos: make(map[string]int)}
	started := time.Now()

	cache := s.images.FetchImages(ctx, s.cfg.ImageBatchSize)
	if client := s.store.Client(); client != nil {
		s.log.WithField("endpoint", client.EndpointURL().Host).Info("Uploading seed files to object store")
	}

	unidades, err := s.seedUnidadesSaude(ctx, report)
	if err != nil {
		return report, err
	}

	roles, err := s.seedRoles(ctx, report)
	if err != nil {
		return report, err
	}

	team, err := s.seedStaff(ctx, report, unidades, roles)
	if err != nil {
		return report, err
	}

	locais, err := s.seedLocaisLesao(ctx, report)
	if err != nil {
		return report, err
	}

	s.log.WithField("pacientes", s.cfg.Pacientes).Info("Creating patients")
	for i := 0; i < s.cfg.Pacientes; i++ {
		if i%10 == 0 {
			s.log.WithFields(logrus.Fields{
				"current": i + 1,
				"total":   s.cfg.Pacientes,
			}).Info("Seeding patient")
		}

		if err := s.seedPaciente(ctx, report, i, team[i%len(team)], locais, cache); err != nil {
			return report, err
		}
	}

	s.log.WithFields(logrus.Fields{
		"pacientes":        report.Pacientes,
		"registros_lesoes": report.RegistrosLesoes,
		"imagens":          report.Imagens,
		"fallbacks":        report.Fallbacks,
		"fototipos":        report.Fototipos,
		"elapsed":          time.Since(started).Round(time.Millisecond).String(),
	}).Info("Seeding finished")

	return report, nil
}

func (s *Seeder) seedUnidadesSaude(ctx context.Context, report *Report) ([]entity.UnidadeSaude, error) {
	unidades := make([]entity.UnidadeSaude, len(unidadesFixture))
	copy(unidades, unidadesFixture)

	for i := range unidades {
		if err := s.unidadeSaudeRepo.Create(ctx, s.db, &unidades[i]); err != nil {
			return nil, fmt.Errorf("create unidade de saude %s: %w", unidades[i].CodigoUnidadeSaude, err)
		}
		report.UnidadesSaude++
	}
	metrics.RecordSeeded("unidades_saude", len(unidades))
	return unidades, nil
}

func (s *Seeder) seedRoles(ctx context.Context, report *Report) ([]entity.Role, error) {
	roles := make([]entity.Role, len(rolesFixture))
	copy(roles, rolesFixture)

	for i := range roles {
		if err := s.roleRepo.Create(ctx, s.db, &roles[i]); err != nil {
			return nil, fmt.Errorf("create role %s: %w", roles[i].Name, err)
		}
		report.Roles++
	}
	metrics.RecordSeeded("roles", len(roles))
	return roles, nil
}

func (s *Seeder) seedStaff(ctx context.Context, report *Report, unidades []entity.UnidadeSaude, roles []entity.Role) ([]staff, error) {
	result := make([]staff, 0, len(staffFixtures))

	for _, fx := range staffFixtures {
		hash, err := bcrypt.GenerateFromPassword([]byte(fx.senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password of %s: %w", fx.email, err)
		}
		senhaHash := string(hash)
		nome := fx.nome

		user := &entity.User{
			NomeUsuario: &nome,
			Email:       fx.email,
			CPF:         fx.cpf,
			SenhaHash:   &senhaHash,
			FlAtivo:     true,
		}
		if err := s.userRepo.Create(ctx, s.db, user); err != nil {
			return nil, fmt.Errorf("create user %s: %w", fx.email, err)
		}

		role := roles[fx.role]
		unidade := unidades[fx.unidade]
		if err := s.membershipRepo.AddRole(ctx, s.db, &entity.UserRole{UserID: user.ID, RoleID: role.ID}); err != nil {
			return nil, fmt.Errorf("bind role of %s: %w", fx.email, err)
		}
		if err := s.membershipRepo.AddUnidadeSaude(ctx, s.db, &entity.UserUnidadeSaude{UserID: user.ID, UnidadeSaudeID: unidade.ID}); err != nil {
			return nil, fmt.Errorf("bind unidade de saude of %s: %w", fx.email, err)
		}
		user.Roles = []entity.Role{role}
		user.UnidadesSaude = []entity.UnidadeSaude{unidade}

		result = append(result, staff{user: user, unidadeSaudeID: unidade.ID})
		report.Users++
	}
	metrics.RecordSeeded("users", len(result))
	return result, nil
}

func (s *Seeder) seedLocaisLesao(ctx context.Context, report *Report) ([]entity.LocalLesao, error) {
	batch := make([]entity.LocalLesao, len(entity.LocaisLesao))
	for i, nome := range entity.LocaisLesao {
		batch[i] = entity.LocalLesao{Nome: nome}
	}

	if err := s.localLesaoRepo.CreateBatch(ctx, s.db, batch); err != nil {
		return nil, fmt.Errorf("create locais de lesao: %w", err)
	}

	locais, err := s.localLesaoRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("load locais de lesao: %w", err)
	}
	report.LocaisLesao = len(locais)
	metrics.RecordSeeded("locais_lesao", len(locais))
	return locais, nil
}

func (s *Seeder) seedPaciente(ctx context.Context, report *Report, i int, st staff, locais []entity.LocalLesao, cache []imagecatalog.Image) error {
	f := s.faker

	paciente := &entity.Paciente{
		NomePaciente:     truncate(f.Name(), 100),
		DataNascimento:   s.birthdate(),
		Sexo:             pick(f, entity.SexoValues),
		CPFPaciente:      fmt.Sprintf("%011d", 10000000000+i),
		NumCartaoSUS:     fmt.Sprintf("%d", 100000000000000+i),
		EnderecoPaciente: truncate(f.Street()+", "+f.City(), 300),
		TelefonePaciente: fmt.Sprintf("%011d", 11000000000+i),
		EmailPaciente:    truncate(f.Email(), 100),
		AutorizaPesquisa: f.Bool(),
	}
	if err := s.pacienteRepo.Create(ctx, s.db, paciente); err != nil {
		return fmt.Errorf("create paciente %d: %w", i, err)
	}
	report.Pacientes++
	metrics.RecordSeeded("pacientes", 1)

	termo := &entity.TermoConsentimento{ArquivoPath: s.uploadTermo(ctx, report, i)}
	if err := s.termoRepo.Create(ctx, s.db, termo); err != nil {
		return fmt.Errorf("create termo de consentimento %d: %w", i, err)
	}

	saudeGeral := fakeSaudeGeral(f)
	if err := s.questionarioRepo.CreateSaudeGeral(ctx, s.db, saudeGeral); err != nil {
		return fmt.Errorf("create saude geral %d: %w", i, err)
	}
	fototipo := fakeAvaliacaoFototipo(f)
	if err := s.questionarioRepo.CreateAvaliacaoFototipo(ctx, s.db, fototipo); err != nil {
		return fmt.Errorf("create avaliacao fototipo %d: %w", i, err)
	}
	report.Fototipos[fototipo.Fototipo()]++
	historico := fakeHistoricoCancerPele(f)
	if err := s.questionarioRepo.CreateHistoricoCancerPele(ctx, s.db, historico); err != nil {
		return fmt.Errorf("create historico cancer pele %d: %w", i, err)
	}
	fatores := fakeFatoresRiscoProtecao(f)
	if err := s.questionarioRepo.CreateFatoresRiscoProtecao(ctx, s.db, fatores); err != nil {
		return fmt.Errorf("create fatores risco protecao %d: %w", i, err)
	}
	investigacao := fakeInvestigacaoLesoesSuspeitas(f)
	if err := s.questionarioRepo.CreateInvestigacaoLesoesSuspeitas(ctx, s.db, investigacao); err != nil {
		return fmt.Errorf("create investigacao lesoes suspeitas %d: %w", i, err)
	}

	atendimento := &entity.Atendimento{
		PacienteID:                    paciente.ID,
		UserID:                        st.user.ID,
		UnidadeSaudeID:                st.unidadeSaudeID,
		TermoConsentimentoID:          termo.ID,
		SaudeGeralID:                  saudeGeral.ID,
		AvaliacaoFototipoID:           fototipo.ID,
		HistoricoCancerPeleID:         historico.ID,
		FatoresRiscoProtecaoID:        fatores.ID,
		InvestigacaoLesoesSuspeitasID: investigacao.ID,
	}
	if err := s.atendimentoRepo.Create(ctx, s.db, atendimento); err != nil {
		return fmt.Errorf("create atendimento %d: %w", i, err)
	}
	report.Atendimentos++
	metrics.RecordSeeded("atendimentos", 1)

	if len(locais) == 0 {
		return nil
	}

	numLesoes := f.IntRange(0, s.cfg.MaxLesoes)
	for j := 1; j <= numLesoes; j++ {
		local := locais[f.IntRange(0, len(locais)-1)]
		registro := &entity.RegistroLesoes{
			LocalLesaoID:   local.ID,
			DescricaoLesao: truncate(fmt.Sprintf("Lesão observada na região %s - %s", local.Nome, f.Sentence(20)), 500),
			AtendimentoID:  atendimento.ID,
		}
		if err := s.registroRepo.Create(ctx, s.db, registro); err != nil {
			return fmt.Errorf("create registro de lesao %d/%d: %w", i, j, err)
		}
		report.RegistrosLesoes++
		metrics.RecordSeeded("registros_lesoes", 1)

		numImagens := f.IntRange(1, s.cfg.MaxImagensLesao)
		for k := 1; k <= numImagens; k++ {
			imagem := &entity.RegistroLesoesImagens{
				ArquivoPath:      s.uploadLesao(ctx, report, i, j, k, cache),
				RegistroLesoesID: registro.ID,
			}
			if err := s.registroRepo.CreateImagem(ctx, s.db, imagem); err != nil {
				return fmt.Errorf("create imagem de lesao %d/%d/%d: %w", i, j, k, err)
			}
			report.Imagens++
			metrics.RecordSeeded("registros_lesoes_imagens", 1)
		}
	}

	return nil
}

// uploadTermo stores a placeholder consent document and returns its path, or
// the fallback path when the download or upload fails.
func (s *Seeder) uploadTermo(ctx context.Context, report *Report, i int) string {
	fallback := fmt.Sprintf("termos/consentimento_%d_fallback.jpg", i)
	if len(s.cfg.DocumentURLs) == 0 {
		report.Fallbacks++
		return fallback
	}

	url := pick(s.faker, s.cfg.DocumentURLs)
	objectName := fmt.Sprintf("termos/consentimento_%d_%s.jpg", i, s.faker.UUID())

	path, err := s.transfer(ctx, url, objectName)
	if err != nil {
		s.log.WithField("paciente", i).Warnf("Failed to store consent document: %+v", err)
		report.Fallbacks++
		return fallback
	}
	return path
}

func (s *Seeder) uploadLesao(ctx context.Context, report *Report, i, j, k int, cache []imagecatalog.Image) string {
	fallback := fmt.Sprintf("imagens/lesao_%d_%d_%d_fallback.jpg", i, j, k)
	if len(cache) == 0 {
		report.Fallbacks++
		return fallback
	}

	image := cache[s.faker.IntRange(0, len(cache)-1)]
	objectName := fmt.Sprintf("imagens/lesao_%d_%d_%d_%s.jpg", i, j, k, image.ID)

	path, err := s.transfer(ctx, image.ThumbnailURL, objectName)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"paciente": i,
			"isic_id":  image.ID,
		}).Warnf("Failed to store lesion image: %+v", err)
		report.Fallbacks++
		return fallback
	}
	return path
}

func (s *Seeder) transfer(ctx context.Context, url, objectName string) (string, error) {
	data, contentType, err := s.images.Download(ctx, url)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.HTTPTimeout)
	defer cancel()
	return s.store.PutObject(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType)
}

func (s *Seeder) birthdate() time.Time {
	start := time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2010, 12, 31, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, s.faker.IntRange(0, days-1))
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
