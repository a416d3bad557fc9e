package content

// DefaultPages returns the built-in static pages.
func DefaultPages() []Page {
	return []Page{
		{
			Slug:    "about",
			Title:   "About Me",
			Summary: "DevOps engineer focused on automation, monitoring and containers.",
			Content: `A dedicated DevOps engineer with 3 years of experience, specializing in automation, monitoring, Linux, and containerization. I design and run CI/CD pipelines with Docker, Kubernetes and Ansible to streamline infrastructure and application delivery.

I keep services available with proactive monitoring in Prometheus and Grafana, and I enjoy untangling operational problems until they stay solved.

## What I'm Doing

- **CI/CD** - improving the speed and quality of delivery and automating the boring parts
- **Cloud** - designing, securing and maintaining scalable cloud infrastructure
- **Infrastructure as Code** - Terraform and Ansible for consistent deployments
- **Monitoring** - Prometheus, Grafana and Loki for reliable systems

## Skills

| Area | Tools |
|------|-------|
| Cloud | AWS, ESXi |
| Observability | Grafana, Prometheus, Loki, Tempo, Mimir |
| Automation | Ansible, Linux Shell, Helm, ArgoCD, Terraform |
| Containers | Docker, Kubernetes, Docker Swarm, CRI-O, CapRover, Portainer |
`,
		},
		{
			Slug:    "contact",
			Title:   "Contact",
			Summary: "Ways to get in touch.",
			Content: `Have a project in mind or want to talk infrastructure? Reach out.

- Email: hello@opsfolio.dev
- GitHub: https://github.com/opsfolio
- LinkedIn: https://www.linkedin.com/in/opsfolio

I usually answer within two working days.
`,
		},
	}
}
