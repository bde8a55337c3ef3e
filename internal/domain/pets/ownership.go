package pets

import "context"

// OwnerOf expone el ownerEmail de una mascota.
// Lo usan los handlers para el chequeo owner-o-admin sin cargar la mascota completa en otros módulos.
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.Get(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerEmail, nil
}
