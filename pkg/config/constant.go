package config

const (
	Port           = "service.port"
	KubeconfigPath = "service.kubeconfig_path"
	Auth           = "service.auth"
	RootPassword   = "service.root_password"
	HostsFile      = "service.hosts_file"
)
