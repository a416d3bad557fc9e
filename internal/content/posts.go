package content

import "strings"

// fenced lets the literal bodies below use ~~~ where a code fence belongs,
// since Go raw strings cannot hold backticks.
func fenced(body string) string {
	return strings.ReplaceAll(body, "~~~", "```")
}

// DefaultPosts returns the built-in collection in declaration order. Each
// call returns a fresh slice.
func DefaultPosts() []Post {
	return []Post{
		{
			Slug:    "python-docker-health-monitoring",
			Title:   "Python Code for Docker Health Monitoring",
			Excerpt: "Learn how to implement robust Docker container health checks using Python. This guide covers monitoring container status, handling failures, and automating recovery processes.",
			Content: fenced(`
# Python Code for Docker Health Monitoring

Docker health checks are crucial for maintaining reliable containerized applications. In this post, we'll explore how to implement comprehensive health monitoring using Python.

## Why Docker Health Monitoring Matters

Container health monitoring helps you:
- Detect failing containers early
- Automate recovery processes
- Maintain service availability
- Monitor resource usage

## Basic Health Check Implementation

Let's start with a simple health check script:

~~~python
import docker
import logging

logging.basicConfig(level=logging.INFO)
logger = logging.getLogger(__name__)

class DockerHealthMonitor:
    def __init__(self):
        self.client = docker.from_env()

    def check_container_health(self, container_name: str) -> dict:
        try:
            container = self.client.containers.get(container_name)
            return {
                'name': container.name,
                'status': container.status,
                'health': container.attrs.get('State', {}).get('Health', {}),
            }
        except docker.errors.NotFound:
            logger.error(f"Container {container_name} not found")
            return {'error': f"Container {container_name} not found"}
~~~

## Automated Recovery

When a container stops answering, restart it and back off between attempts:

~~~python
import time

def recover(monitor, name, attempts=3):
    for attempt in range(attempts):
        container = monitor.client.containers.get(name)
        container.restart()
        time.sleep(2 ** attempt)
        if monitor.check_container_health(name).get('status') == 'running':
            return True
    return False
~~~

## Best Practices

1. **Set appropriate timeouts** for health checks
2. **Implement exponential backoff** for recovery attempts
3. **Monitor resource usage** to prevent system overload
4. **Use structured logging** for better debugging
5. **Test your recovery procedures** regularly

## Conclusion

Implementing robust Docker health monitoring with Python helps ensure your containerized applications remain reliable and available.

Remember to test your monitoring and recovery procedures in a staging environment before deploying to production.
`),
			Category: "DevOps",
			Date:     "Dec 20, 2024",
			ReadTime: "12 min read",
			Views:    "45 views",
			Author:   "DevOps Engineer",
		},
		{
			Slug:     "terraform-aws-infrastructure",
			Title:    "Building Resilient Infrastructure with Terraform and AWS",
			Excerpt:  "Learn how to create scalable and maintainable infrastructure using Infrastructure as Code principles. This comprehensive guide covers best practices for Terraform modules, state management, and AWS resource organization.",
			Content:  "# Building Resilient Infrastructure with Terraform and AWS\n\nContent coming soon...",
			Category: "DevOps",
			Date:     "Dec 15, 2024",
			ReadTime: "8 min read",
			Views:    "142 views",
			Author:   "Cloud Architect",
		},
		{
			Slug:     "kubernetes-monitoring-prometheus",
			Title:    "Monitoring Kubernetes Clusters with Prometheus and Grafana",
			Excerpt:  "A step-by-step guide to setting up comprehensive monitoring for your Kubernetes infrastructure...",
			Content:  "# Monitoring Kubernetes Clusters with Prometheus and Grafana\n\nContent coming soon...",
			Category: "SRE",
			Date:     "Dec 10, 2024",
			ReadTime: "6 min read",
			Views:    "89 views",
			Author:   "SRE Specialist",
		},
		{
			Slug:     "gitops-argocd-helm",
			Title:    "GitOps Workflows with ArgoCD and Helm",
			Excerpt:  "Implementing continuous deployment using GitOps principles for better reliability and traceability...",
			Content:  "# GitOps Workflows with ArgoCD and Helm\n\nContent coming soon...",
			Category: "DevOps",
			Date:     "Dec 5, 2024",
			ReadTime: "10 min read",
			Views:    "156 views",
			Author:   "DevOps Engineer",
		},
		{
			Slug:     "aws-cost-optimization",
			Title:    "AWS Cost Optimization Strategies for Startups",
			Excerpt:  "Practical tips to reduce your AWS bill without compromising on performance and reliability...",
			Content:  "# AWS Cost Optimization Strategies for Startups\n\nContent coming soon...",
			Category: "Cloud",
			Date:     "Nov 28, 2024",
			ReadTime: "7 min read",
			Views:    "203 views",
			Author:   "Cloud Engineer",
		},
	}
}
