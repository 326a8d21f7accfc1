package seeder

import (
	"dermatriagem-api/internal/domain/entity"

	"github.com/brianvoe/gofakeit/v7"
)

// The generators below only fill a conditional answer when its gating answer
// is true, so every result passes Validate.

func pick(f *gofakeit.Faker, values []string) string {
	return values[f.IntRange(0, len(values)-1)]
}

func pickInt(f *gofakeit.Faker, values []int) int {
	return values[f.IntRange(0, len(values)-1)]
}

// maybe returns a pointer to value when gate holds and a coin flip agrees.
func maybe(f *gofakeit.Faker, gate bool, value string) *string {
	if !gate || !f.Bool() {
		return nil
	}
	return &value
}

// when returns a pointer to value whenever gate holds.
func when(gate bool, value string) *string {
	if !gate {
		return nil
	}
	return &value
}

func fakeSaudeGeral(f *gofakeit.Faker) *entity.SaudeGeral {
	s := &entity.SaudeGeral{
		DoencasCronicas:         f.Bool(),
		Hipertenso:              f.Bool(),
		Diabetes:                f.Bool(),
		Cardiopatia:             f.Bool(),
		DiagnosticoCancer:       f.Bool(),
		UsoMedicamentos:         f.Bool(),
		PossuiAlergia:           f.Bool(),
		CirurgiasDermatologicas: f.Bool(),
		PraticaAtividadeFisica:  f.Bool(),
	}
	s.OutrasDoencas = maybe(f, s.DoencasCronicas, "Hipertensão leve")
	s.TipoCancer = maybe(f, s.DiagnosticoCancer, "Carcinoma basocelular")
	s.Medicamentos = maybe(f, s.UsoMedicamentos, "Losartana 50mg")
	s.Alergias = maybe(f, s.PossuiAlergia, "Pólen")
	s.TipoProcedimento = maybe(f, s.CirurgiasDermatologicas, "Peeling químico")
	s.FrequenciaAtividadeFisica = when(s.PraticaAtividadeFisica, pick(f, frequenciasAtividade))
	return s
}

func fakeAvaliacaoFototipo(f *gofakeit.Faker) *entity.AvaliacaoFototipo {
	return &entity.AvaliacaoFototipo{
		CorPele:            pickInt(f, entity.EscalaCorPele),
		CorOlhos:           pickInt(f, entity.EscalaCorOlhos),
		CorCabelo:          pickInt(f, entity.EscalaCorCabelo),
		QuantidadeSardas:   pickInt(f, entity.EscalaQuantidadeSardas),
		ReacaoSol:          pickInt(f, entity.EscalaReacaoSol),
		Bronzeamento:       pickInt(f, entity.EscalaBronzeamento),
		SensibilidadeSolar: pickInt(f, entity.EscalaSensibilidadeSolar),
	}
}

func fakeHistoricoCancerPele(f *gofakeit.Faker) *entity.HistoricoCancerPele {
	h := &entity.HistoricoCancerPele{
		HistoricoFamiliar:     f.Bool(),
		DiagnosticoPessoal:    f.Bool(),
		LesoesPrecancerigenas: f.Bool(),
		TratamentoLesoes:      f.Bool(),
	}
	h.GrauParentesco = when(h.HistoricoFamiliar, pick(f, grausParentesco))
	h.TipoCancerFamiliar = when(h.HistoricoFamiliar, pick(f, tiposCancer))
	h.TipoCancerFamiliarOutro = when(h.TipoCancerFamiliar != nil && *h.TipoCancerFamiliar == entity.OpcaoOutro, "Câncer de pele raro")
	h.TipoCancerPessoal = maybe(f, h.DiagnosticoPessoal, pick(f, tiposCancer))
	h.TipoCancerPessoalOutro = when(h.TipoCancerPessoal != nil && *h.TipoCancerPessoal == entity.OpcaoOutro, "Dermatofibrossarcoma")
	h.TipoTratamento = maybe(f, h.TratamentoLesoes, pick(f, tiposTratamento))
	h.TipoTratamentoOutro = when(h.TipoTratamento != nil && *h.TipoTratamento == entity.OpcaoOutro, "Terapia fotodinâmica")
	return h
}

func fakeFatoresRiscoProtecao(f *gofakeit.Faker) *entity.FatoresRiscoProtecao {
	r := &entity.FatoresRiscoProtecao{
		ExposicaoSolarProlongada:       f.Bool(),
		QueimadurasGraves:              f.Bool(),
		UsoProtetorSolar:               f.Bool(),
		UsoChapeuRoupaProtecao:         f.Bool(),
		BronzeamentoArtificial:         f.Bool(),
		CheckupsDermatologicos:         f.Bool(),
		ParticipacaoCampanhasPrevencao: f.Bool(),
	}
	r.FrequenciaExposicaoSolar = when(r.ExposicaoSolarProlongada, pick(f, frequenciasExposicao))
	r.QuantidadeQueimaduras = maybe(f, r.QueimadurasGraves, pick(f, quantidadesQueimadura))
	r.FatorProtecaoSolar = maybe(f, r.UsoProtetorSolar, pick(f, fatoresProtecao))
	r.FrequenciaCheckups = maybe(f, r.CheckupsDermatologicos, pick(f, frequenciasCheckup))
	r.FrequenciaCheckupsOutro = when(r.FrequenciaCheckups != nil && *r.FrequenciaCheckups == entity.OpcaoOutro, "A cada dois anos")
	return r
}

func fakeInvestigacaoLesoesSuspeitas(f *gofakeit.Faker) *entity.InvestigacaoLesoesSuspeitas {
	i := &entity.InvestigacaoLesoesSuspeitas{
		MudancaPintasManchas:  f.Bool(),
		SintomasLesoes:        f.Bool(),
		CaracteristicasLesoes: f.Bool(),
		ConsultaMedica:        f.Bool(),
	}
	i.TempoAlteracoes = maybe(f, i.MudancaPintasManchas || i.SintomasLesoes, pick(f, temposAlteracao))
	i.DiagnosticoLesoes = maybe(f, i.ConsultaMedica, "Lesão benigna, apenas monitoramento recomendado")
	return i
}
