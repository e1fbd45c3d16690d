package manifest

const (
	// APIVersion is the API group and version of the Jumpstarter CR.
	APIVersion = "jumpstarter.dev/v1alpha1"
	// Kind is the kind of the Jumpstarter CR.
	Kind = "Jumpstarter"
	// ResourceName is the fixed name of the managed resource.
	ResourceName = "jumpstarter"
	// ResourceNamespace is the namespace the resource lives in.
	ResourceNamespace = "default"
)

// Jumpstarter builds the fixed shape Jumpstarter custom resource document.
// imageVersion is omitted from the spec when empty.
func Jumpstarter(baseDomain, imageVersion string) Map {
	spec := Map{
		{Key: "baseDomain", Value: baseDomain},
	}
	if imageVersion != "" {
		spec = append(spec, Entry{Key: "imageVersion", Value: imageVersion})
	}

	return Map{
		{Key: "apiVersion", Value: APIVersion},
		{Key: "kind", Value: Kind},
		{Key: "metadata", Value: Map{
			{Key: "name", Value: ResourceName},
			{Key: "namespace", Value: ResourceNamespace},
		}},
		{Key: "spec", Value: spec},
	}
}
