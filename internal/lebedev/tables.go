package lebedev

import "fmt"

// GenGrid returns the Lebedev nodes and weights for the given degree.
// The returned slice has exactly degree entries and its weights sum to 1.
func GenGrid(degree int) ([]Node, error) {
	var nodes []Node

	switch degree {
	case 6:
		nodes = octA1(nodes, 0.1666666666666667)
	case 14:
		nodes = octA1(nodes, 0.6666666666666667e-1)
		nodes = octA3(nodes, 0.7500000000000000e-1)
	case 26:
		nodes = octA1(nodes, 0.4761904761904762e-1)
		nodes = octA2(nodes, 0.3809523809523810e-1)
		nodes = octA3(nodes, 0.3214285714285714e-1)
	case 38:
		nodes = octA1(nodes, 0.9523809523809524e-2)
		nodes = octA3(nodes, 0.3214285714285714e-1)
		nodes = octPQ0(nodes, 0.4597008433809831, 0.2857142857142857e-1)
	case 50:
		nodes = octA1(nodes, 0.1269841269841270e-1)
		nodes = octA2(nodes, 0.2257495590828924e-1)
		nodes = octA3(nodes, 0.2109375000000000e-1)
		nodes = octLLM(nodes, 0.3015113445777636, 0.2017333553791887e-1)
	case 74:
		nodes = octA1(nodes, 0.5130671797338464e-3)
		nodes = octA2(nodes, 0.1660406956574204e-1)
		nodes = octA3(nodes, -0.2958603896103896e-1)
		nodes = octLLM(nodes, 0.4803844614152614, 0.2657620708293468e-1)
		nodes = octPQ0(nodes, 0.3207726489807764, 0.1652217099371571e-1)
	case 86:
		nodes = octA1(nodes, 0.1154401154401154e-1)
		nodes = octA3(nodes, 0.1194390908585628e-1)
		nodes = octLLM(nodes, 0.3696028464541502, 0.1111055571060340e-1)
		nodes = octLLM(nodes, 0.6943540066026664, 0.1187650129453714e-1)
		nodes = octPQ0(nodes, 0.3742430390903412, 0.1181230374690448e-1)
	case 110:
		nodes = octA1(nodes, 0.3828270494937162e-2)
		nodes = octA3(nodes, 0.9793737512487512e-2)
		nodes = octLLM(nodes, 0.1851156353447362, 0.8211737283191111e-2)
		nodes = octLLM(nodes, 0.6904210483822922, 0.9942814891178103e-2)
		nodes = octLLM(nodes, 0.3956894730559419, 0.9595471336070963e-2)
		nodes = octPQ0(nodes, 0.4783690288121502, 0.9694996361663028e-2)
	case 146:
		nodes = octA1(nodes, 0.5996313688621381e-3)
		nodes = octA2(nodes, 0.7372999718620756e-2)
		nodes = octA3(nodes, 0.7210515360144488e-2)
		nodes = octLLM(nodes, 0.6764410400114264, 0.7116355493117555e-2)
		nodes = octLLM(nodes, 0.4174961227965453, 0.6753829486314477e-2)
		nodes = octLLM(nodes, 0.1574676672039082, 0.7574394159054034e-2)
		nodes = octRSW(nodes, 0.1403553811713183, 0.4493328323269557, 0.6991087353303262e-2)
	case 170:
		nodes = octA1(nodes, 0.5544842902037365e-2)
		nodes = octA2(nodes, 0.6071332770670752e-2)
		nodes = octA3(nodes, 0.6383674773515093e-2)
		nodes = octLLM(nodes, 0.2551252621114134, 0.5183387587747790e-2)
		nodes = octLLM(nodes, 0.6743601460362766, 0.6317929009813725e-2)
		nodes = octLLM(nodes, 0.4318910696719410, 0.6201670006589077e-2)
		nodes = octPQ0(nodes, 0.2613931360335988, 0.5477143385137348e-2)
		nodes = octRSW(nodes, 0.4990453161796037, 0.1446630744325115, 0.5968383987681156e-2)
	case 194:
		nodes = octA1(nodes, 0.1782340447244611e-2)
		nodes = octA2(nodes, 0.5716905949977102e-2)
		nodes = octA3(nodes, 0.5573383178848738e-2)
		nodes = octLLM(nodes, 0.6712973442695226, 0.5608704082587997e-2)
		nodes = octLLM(nodes, 0.2892465627575439, 0.5158237711805383e-2)
		nodes = octLLM(nodes, 0.4446933178717437, 0.5518771467273614e-2)
		nodes = octLLM(nodes, 0.1299335447650067, 0.4106777028169394e-2)
		nodes = octPQ0(nodes, 0.3457702197611283, 0.5051846064614808e-2)
		nodes = octRSW(nodes, 0.1590417105383530, 0.8360360154824589, 0.5530248916233094e-2)
	default:
		return nil, fmt.Errorf("lebedev: no coefficient table for degree %d", degree)
	}

	if len(nodes) != degree {
		return nil, fmt.Errorf("lebedev: degree %d table produced %d nodes", degree, len(nodes))
	}

	return nodes, nil
}
