package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sears-pos/internal/application/dto"
	"github.com/tu-usuario/sears-pos/internal/domain"
	"github.com/tu-usuario/sears-pos/internal/domain/entity"
)

type fakeDepartamentoRepo struct {
	porID    map[string]*entity.Departamento
	enUso    bool
	borrados []string
}

func (r *fakeDepartamentoRepo) Create(d *entity.Departamento) error {
	r.porID[d.ID] = d
	return nil
}
func (r *fakeDepartamentoRepo) GetByID(id string) (*entity.Departamento, error) {
	return r.porID[id], nil
}
func (r *fakeDepartamentoRepo) List(int, int) ([]*entity.Departamento, error) { return nil, nil }
func (r *fakeDepartamentoRepo) Update(d *entity.Departamento) error {
	r.porID[d.ID] = d
	return nil
}
func (r *fakeDepartamentoRepo) Delete(id string) error {
	r.borrados = append(r.borrados, id)
	delete(r.porID, id)
	return nil
}
func (r *fakeDepartamentoRepo) EnUso(string) (bool, error) { return r.enUso, nil }

type fakeClienteRepo struct {
	porID map[string]*entity.Cliente
	enUso bool
}

func (r *fakeClienteRepo) Create(c *entity.Cliente) error {
	r.porID[c.ID] = c
	return nil
}
func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) { return r.porID[id], nil }
func (r *fakeClienteRepo) List(int, int) ([]*entity.Cliente, error)   { return nil, nil }
func (r *fakeClienteRepo) Update(c *entity.Cliente) error {
	r.porID[c.ID] = c
	return nil
}
func (r *fakeClienteRepo) Delete(id string) error {
	delete(r.porID, id)
	return nil
}
func (r *fakeClienteRepo) EnUso(string) (bool, error) { return r.enUso, nil }

func TestDepartamentoUseCase_CreateRechazaNombreVacio(t *testing.T) {
	uc := NewDepartamentoUseCase(&fakeDepartamentoRepo{porID: map[string]*entity.Departamento{}})

	_, err := uc.Create(dto.CreateDepartamentoRequest{Nombre: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := uc.Create(dto.CreateDepartamentoRequest{Nombre: " Electrónica ", Ubicacion: "Planta baja"})
	require.NoError(t, err)
	assert.Equal(t, "Electrónica", resp.Nombre, "el nombre se guarda sin espacios laterales")
	assert.NotEmpty(t, resp.ID)
}

func TestDepartamentoUseCase_UpdateParcial(t *testing.T) {
	repo := &fakeDepartamentoRepo{porID: map[string]*entity.Departamento{
		"d1": {ID: "d1", Nombre: "Hogar", Ubicacion: "Piso 2", Encargado: "Marta"},
	}}
	uc := NewDepartamentoUseCase(repo)

	nuevo := "Línea blanca"
	resp, err := uc.Update("d1", dto.UpdateDepartamentoRequest{Nombre: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, "Línea blanca", resp.Nombre)
	assert.Equal(t, "Piso 2", resp.Ubicacion, "los campos ausentes no cambian")

	vacio := ""
	_, err = uc.Update("d1", dto.UpdateDepartamentoRequest{Nombre: &vacio})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err = uc.Update("no-existe", dto.UpdateDepartamentoRequest{Nombre: &nuevo})
	require.NoError(t, err)
	assert.Nil(t, resp, "actualizar un id inexistente devuelve nil para mapear a 404")
}

func TestDepartamentoUseCase_DeleteBloqueadoSiEnUso(t *testing.T) {
	repo := &fakeDepartamentoRepo{
		porID: map[string]*entity.Departamento{"d1": {ID: "d1", Nombre: "Hogar"}},
		enUso: true,
	}
	uc := NewDepartamentoUseCase(repo)

	err := uc.Delete("d1")
	assert.ErrorIs(t, err, domain.ErrEnUso)
	assert.Empty(t, repo.borrados, "con dependencias no se borra nada")

	repo.enUso = false
	require.NoError(t, uc.Delete("d1"))
	assert.Equal(t, []string{"d1"}, repo.borrados)

	assert.ErrorIs(t, uc.Delete("d1"), domain.ErrNotFound)
}

func TestClienteUseCase_CorreoObligatorioYNormalizado(t *testing.T) {
	uc := NewClienteUseCase(&fakeClienteRepo{porID: map[string]*entity.Cliente{}})

	_, err := uc.Create(dto.CreateClienteRequest{Nombre: "Ana Torres"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := uc.Create(dto.CreateClienteRequest{Nombre: "Ana Torres", Correo: " Ana@Example.COM "})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", resp.Correo)
}

func TestClienteUseCase_ProtegeClienteMostrador(t *testing.T) {
	repo := &fakeClienteRepo{porID: map[string]*entity.Cliente{
		entity.ClienteMostradorID: {ID: entity.ClienteMostradorID, Nombre: "Público en General"},
	}}
	uc := NewClienteUseCase(repo)

	assert.ErrorIs(t, uc.Delete(entity.ClienteMostradorID), domain.ErrEnUso)

	nombre := "Otro"
	_, err := uc.Update(entity.ClienteMostradorID, dto.UpdateClienteRequest{Nombre: &nombre})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
