package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/service"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/wizard"
)

type inmemWizards map[string]wizard.State

func (m inmemWizards) Load(_ context.Context, id string) (wizard.State, error) {
	st, ok := m[id]
	if !ok {
		return wizard.State{}, service.ErrWizardNotFound
	}
	return st, nil
}

func (m inmemWizards) Save(_ context.Context, st wizard.State) error {
	m[st.ID] = st
	return nil
}

func TestWizardService_Flow(t *testing.T) {
	subjects, _ := newSubjectService(t)
	store := inmemWizards{}
	svc := service.NewWizardService(store, subjects, builtInResolver{})
	ctx := context.Background()

	v, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Step)
	assert.Equal(t, []string{"2025-2029", "2024-2028"}, v.Options)

	_, err = svc.Subjects(ctx, v.ID)
	assert.ErrorIs(t, err, wizard.ErrInvalidStep)

	v, err = svc.Advance(ctx, v.ID, "2024-2028")
	require.NoError(t, err)
	assert.Equal(t, "2021 Regulation", v.RegulationName)
	assert.Len(t, v.Options, len(model.Departments))

	v, err = svc.Advance(ctx, v.ID, "it")
	require.NoError(t, err)
	assert.Equal(t, "IT", v.Department)
	assert.Len(t, v.Options, 8)

	_, err = svc.Advance(ctx, v.ID, "9")
	assert.ErrorIs(t, err, wizard.ErrInvalidSemester)

	v, err = svc.Advance(ctx, v.ID, "3")
	require.NoError(t, err)
	assert.True(t, v.Ready)
	assert.Equal(t, "Sem-3", v.SemesterLabel)

	subs, err := svc.Subjects(ctx, v.ID)
	require.NoError(t, err)
	assert.Len(t, subs, 2)

	v, err = svc.Back(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StageSemester, v.Stage)
	assert.Equal(t, wizard.StageSemester, store[v.ID].Stage, "state is persisted")
}

func TestWizardService_UnknownID(t *testing.T) {
	subjects, _ := newSubjectService(t)
	svc := service.NewWizardService(inmemWizards{}, subjects, builtInResolver{})

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrWizardNotFound)
	_, err = svc.Advance(context.Background(), "missing", "2025-2029")
	assert.ErrorIs(t, err, service.ErrWizardNotFound)
}
