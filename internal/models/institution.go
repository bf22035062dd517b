package models

// Institution identifies a bank available through the link flow.
type Institution struct {
	ID   string `json:"institution_id"`
	Name string `json:"name"`
}

// sandboxInstitutions are the banks the sandbox aggregator will link against.
var sandboxInstitutions = []Institution{
	{ID: "ins_sandbox_1", Name: "First Sandbox Bank"},
	{ID: "ins_sandbox_2", Name: "Harbor Federal Credit Union"},
	{ID: "ins_sandbox_3", Name: "Meridian Trust"},
}

// SandboxInstitutions returns the institutions accepted by the sandbox flow.
func SandboxInstitutions() []Institution {
	result := make([]Institution, len(sandboxInstitutions))
	copy(result, sandboxInstitutions)
	return result
}

// FindInstitution looks up a sandbox institution by ID.
func FindInstitution(id string) (*Institution, bool) {
	for i := range sandboxInstitutions {
		if sandboxInstitutions[i].ID == id {
			return &sandboxInstitutions[i], true
		}
	}
	return nil, false
}
