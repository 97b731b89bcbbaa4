package credit

import (
	appErrors "Credify/internal/errors"
)

// StrategyRegistry resolve a estratégia de criação/atualização pelo segmento
// do cliente. As tabelas são montadas uma única vez na inicialização.
type StrategyRegistry struct {
	creation map[CustomerType]CreationStrategy
	update   map[CustomerType]UpdateStrategy
}

func NewStrategyRegistry(repository Repository) *StrategyRegistry {
	return &StrategyRegistry{
		creation: map[CustomerType]CreationStrategy{
			CustomerPersonal: &PersonalCreationStrategy{Repository: repository},
			CustomerBusiness: &BusinessCreationStrategy{},
		},
		update: map[CustomerType]UpdateStrategy{
			CustomerPersonal: &PersonalUpdateStrategy{},
			CustomerBusiness: &BusinessUpdateStrategy{},
		},
	}
}

func (r *StrategyRegistry) CreationFor(customerType CustomerType) (CreationStrategy, error) {
	strategy, ok := r.creation[customerType]
	if !ok {
		return nil, appErrors.ErrUnsupportedCustomerType.WithDetails(map[string]interface{}{
			"customerType": string(customerType),
		})
	}
	return strategy, nil
}

func (r *StrategyRegistry) UpdateFor(customerType CustomerType) (UpdateStrategy, error) {
	strategy, ok := r.update[customerType]
	if !ok {
		return nil, appErrors.ErrUnsupportedCustomerType.WithDetails(map[string]interface{}{
			"customerType": string(customerType),
		})
	}
	return strategy, nil
}
