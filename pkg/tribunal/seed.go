package tribunal

import "fmt"

// DefaultRegistry returns a registry seeded with the federal courts, the
// regional federal and labor courts, the largest state and electoral
// courts, and the military courts. The seed is intentionally not
// exhaustive; unseeded courts resolve to not-found.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Single-court segments.
	r.Register(segmentSupreme, 0, Entry{
		Name:     "Supremo Tribunal Federal",
		Acronym:  "STF",
		Platform: PlatformCustom,
		BaseURL:  "https://portal.stf.jus.br",
		Branch:   BranchSupreme,
	})
	r.Register(segmentSuperior, 0, Entry{
		Name:     "Superior Tribunal de Justiça",
		Acronym:  "STJ",
		Platform: PlatformCustom,
		BaseURL:  "https://www.stj.jus.br",
		Branch:   BranchSuperior,
	})
	r.Register(segmentMilitaryUnion, 0, Entry{
		Name:     "Superior Tribunal Militar",
		Acronym:  "STM",
		Platform: PlatformCustom,
		BaseURL:  "https://www.stm.jus.br",
		Branch:   BranchMilitary,
	})

	// Federal regional courts, keyed by region digit.
	federal := []struct {
		region  int
		acronym string
		base    string
	}{
		{1, "TRF1", "https://pje.trf1.jus.br"},
		{2, "TRF2", "https://eproc.trf2.jus.br"},
		{3, "TRF3", "https://pje.trf3.jus.br"},
		{4, "TRF4", "https://eproc.trf4.jus.br"},
		{5, "TRF5", "https://pje.trf5.jus.br"},
		{6, "TRF6", "https://pje.trf6.jus.br"},
	}
	for _, trf := range federal {
		platform := PlatformPJe
		if trf.region == 2 || trf.region == 4 {
			platform = PlatformEproc
		}
		r.Register(segmentFederal, trf.region, Entry{
			Name:     "Tribunal Regional Federal da " + ordinal(trf.region) + " Região",
			Acronym:  trf.acronym,
			Platform: platform,
			BaseURL:  trf.base,
			Branch:   BranchFederal,
		})
	}

	// Labor regional courts, keyed by court code.
	labor := []struct {
		code    int
		name    string
		base    string
	}{
		{1, "Rio de Janeiro", "https://pje.trt1.jus.br"},
		{2, "São Paulo", "https://pje.trt2.jus.br"},
		{3, "Minas Gerais", "https://pje.trt3.jus.br"},
		{4, "Rio Grande do Sul", "https://pje.trt4.jus.br"},
		{15, "Campinas", "https://pje.trt15.jus.br"},
	}
	for _, trt := range labor {
		r.Register(segmentLabor, trt.code, Entry{
			Name:     fmt.Sprintf("Tribunal Regional do Trabalho da %dª Região (%s)", trt.code, trt.name),
			Acronym:  fmt.Sprintf("TRT%d", trt.code),
			Platform: PlatformPJe,
			BaseURL:  trt.base,
			Branch:   BranchLabor,
		})
	}

	// Electoral regional courts, keyed by court code (state numbering).
	electoral := []struct {
		code    int
		state   string
		acronym string
	}{
		{13, "Minas Gerais", "TRE-MG"},
		{19, "Rio de Janeiro", "TRE-RJ"},
		{26, "São Paulo", "TRE-SP"},
	}
	for _, tre := range electoral {
		r.Register(segmentElectoral, tre.code, Entry{
			Name:     "Tribunal Regional Eleitoral de " + tre.state,
			Acronym:  tre.acronym,
			Platform: PlatformPJe,
			BaseURL:  "https://pje.tse.jus.br",
			Branch:   BranchElectoral,
		})
	}

	// State military courts, keyed by court code.
	r.Register(segmentStateMilitary, 26, Entry{
		Name:     "Tribunal de Justiça Militar de São Paulo",
		Acronym:  "TJMSP",
		Platform: PlatformCustom,
		BaseURL:  "https://www.tjmsp.jus.br",
		Branch:   BranchMilitary,
	})
	r.Register(segmentStateMilitary, 13, Entry{
		Name:     "Tribunal de Justiça Militar de Minas Gerais",
		Acronym:  "TJMMG",
		Platform: PlatformCustom,
		BaseURL:  "https://www.tjmmg.jus.br",
		Branch:   BranchMilitary,
	})

	// State courts, keyed by court code (state numbering).
	state := []struct {
		code     int
		state    string
		acronym  string
		platform Platform
		base     string
	}{
		{8, "Espírito Santo", "TJES", PlatformPJe, "https://pje.tjes.jus.br"},
		{13, "Minas Gerais", "TJMG", PlatformPJe, "https://pje.tjmg.jus.br"},
		{19, "Rio de Janeiro", "TJRJ", PlatformPJe, "https://tjrj.pje.jus.br"},
		{21, "Rio Grande do Sul", "TJRS", PlatformEproc, "https://eproc1g.tjrs.jus.br"},
		{24, "Santa Catarina", "TJSC", PlatformEproc, "https://eproc1g.tjsc.jus.br"},
		{26, "São Paulo", "TJSP", PlatformESAJ, "https://esaj.tjsp.jus.br"},
	}
	for _, tj := range state {
		r.Register(segmentState, tj.code, Entry{
			Name:     "Tribunal de Justiça de " + tj.state,
			Acronym:  tj.acronym,
			Platform: tj.platform,
			BaseURL:  tj.base,
			Branch:   BranchState,
		})
	}

	return r
}

// ordinal renders a small positive number as a Portuguese ordinal (1ª, 2ª...).
func ordinal(n int) string {
	return fmt.Sprintf("%dª", n)
}
