package tribunal

import (
	"net/url"

	"github.com/coolbeans/prazo/pkg/cnj"
)

// BuildLink returns the public consultation URL for the case on the
// court's e-filing platform. Each platform family has its own query
// template; an unknown family returns the entry's base URL unmodified
// rather than failing.
func BuildLink(id cnj.CaseIdentifier, entry Entry) string {
	switch entry.Platform {
	case PlatformPJe:
		return entry.BaseURL + "/ConsultaPublica/listView.seam?numeroProcesso=" +
			url.QueryEscape(id.Format())
	case PlatformESAJ:
		return entry.BaseURL + "/cpopg/search.do?cbPesquisa=NUMPROC&numeroDigitoAnoUnificado=" +
			url.QueryEscape(id.Format())
	case PlatformEproc:
		return entry.BaseURL + "/externo_controlador.php?acao=processo_consulta_publica&num_processo=" +
			url.QueryEscape(id.Format())
	default:
		return entry.BaseURL
	}
}
