package reconcile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/podssh/internal/inventory"
	"github.com/imamik/podssh/internal/logging"
	"github.com/imamik/podssh/internal/reconcile"
	"github.com/imamik/podssh/internal/sshconfig"
)

type stubSource struct {
	instances []inventory.Instance
	err       error
}

func (s *stubSource) ListInstances(_ context.Context) ([]inventory.Instance, error) {
	return s.instances, s.err
}

func pod(id, name, addr string, port int) inventory.Instance {
	return inventory.Instance{
		ID:          id,
		DisplayName: name,
		Runtime: &inventory.Runtime{Ports: []inventory.EndpointMapping{
			{ContainerPort: 22, HostAddress: addr, HostPort: port},
		}},
	}
}

var _ = Describe("Reconciler", func() {
	var (
		ctx    context.Context
		path   string
		source *stubSource
		opts   reconcile.Options
	)

	BeforeEach(func() {
		ctx = context.Background()
		path = filepath.Join(GinkgoT().TempDir(), "runpod")
		source = &stubSource{}
		opts = reconcile.Options{
			Provider: "runpod",
			Template: sshconfig.Template{User: "root", IdentityFile: "~/.ssh/id_ed25519"},
			Path:     path,
		}
	})

	run := func() (*reconcile.Report, error) {
		return reconcile.New(source, opts, reconcile.WithLogger(logging.New(GinkgoWriter, 2))).Run(ctx)
	}

	Context("when every instance exposes ssh", func() {
		BeforeEach(func() {
			source.instances = []inventory.Instance{
				pod("1", "trainer a", "203.0.113.1", 40001),
				pod("2", "trainer b", "203.0.113.2", 40002),
			}
		})

		It("writes one host block per instance in inventory order", func() {
			report, err := run()
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Written).To(BeTrue())
			Expect(report.Document.Names()).To(Equal([]string{"trainer_a", "trainer_b"}))

			content, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(ContainSubstring("Host trainer_a\n  User root\n  Hostname 203.0.113.1\n  Port 40001\n"))
		})

		It("drops hosts that disappeared since the previous run", func() {
			_, err := run()
			Expect(err).NotTo(HaveOccurred())

			source.instances = source.instances[1:]
			_, err = run()
			Expect(err).NotTo(HaveOccurred())

			content, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).NotTo(ContainSubstring("trainer_a"))
			Expect(string(content)).To(ContainSubstring("trainer_b"))
		})
	})

	Context("when one record is malformed", func() {
		BeforeEach(func() {
			source.instances = []inventory.Instance{
				pod("1", "ok", "203.0.113.1", 40001),
				{ID: "2", DisplayName: "booting", Runtime: &inventory.Runtime{}},
			}
		})

		It("keeps the valid records and reports the failure", func() {
			report, err := run()
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Document.Blocks).To(HaveLen(1))
			Expect(report.Failures()).To(HaveLen(1))
			Expect(report.Failures()[0].Status()).To(Equal(reconcile.StatusFailed))
		})
	})

	Context("when the inventory cannot be fetched", func() {
		BeforeEach(func() {
			Expect(os.WriteFile(path, []byte("Host previous\n"), 0600)).To(Succeed())
			source.err = errors.New("connection refused")
		})

		It("leaves the existing file untouched", func() {
			report, err := run()
			Expect(err).To(MatchError(ContainSubstring("connection refused")))
			Expect(report).To(BeNil())

			content, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("Host previous\n"))
		})
	})

	Context("when two instances normalize to the same name", func() {
		BeforeEach(func() {
			source.instances = []inventory.Instance{
				pod("1", "dev box", "203.0.113.1", 40001),
				pod("2", "other", "203.0.113.2", 40002),
				pod("3", "dev  box", "203.0.113.3", 40003),
			}
		})

		It("keeps the first position with the last values", func() {
			report, err := run()
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Document.Names()).To(Equal([]string{"dev_box", "other"}))

			block, ok := report.Document.Lookup("dev_box")
			Expect(ok).To(BeTrue())
			Expect(block.Hostname).To(Equal("203.0.113.3"))
			Expect(report.Collisions).To(HaveLen(1))
		})
	})
})
