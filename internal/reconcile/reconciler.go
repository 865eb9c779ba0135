package reconcile

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/imamik/podssh/internal/inventory"
	"github.com/imamik/podssh/internal/sshconfig"
)

// Options configures a run.
type Options struct {
	// Provider names the inventory source in the report.
	Provider string
	Template sshconfig.Template
	// Path is the managed config file.
	Path string
	// DryRun builds the report without touching Path.
	DryRun bool
}

// WriteFunc replaces the file at path with doc.
type WriteFunc func(path string, doc *sshconfig.Document) error

// Reconciler converts an inventory into the managed SSH config file.
type Reconciler struct {
	source inventory.Source
	opts   Options
	log    logr.Logger
	write  WriteFunc
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithLogger sets the logger.
func WithLogger(log logr.Logger) Option {
	return func(r *Reconciler) {
		r.log = log
	}
}

// WithWriteFunc replaces the file writer.
func WithWriteFunc(fn WriteFunc) Option {
	return func(r *Reconciler) {
		r.write = fn
	}
}

// New creates a Reconciler for source.
func New(source inventory.Source, opts Options, options ...Option) *Reconciler {
	r := &Reconciler{
		source: source,
		opts:   opts,
		log:    logr.Discard(),
		write:  sshconfig.WriteFile,
	}
	for _, o := range options {
		o(r)
	}
	return r
}

// Run performs one pass. On a write failure the report is returned along
// with the error.
func (r *Reconciler) Run(ctx context.Context) (*Report, error) {
	log := r.log.WithValues("provider", r.opts.Provider)

	log.V(1).Info("listing instances")
	instances, err := r.source.ListInstances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instances: %w", err)
	}
	log.V(1).Info("instances listed", "count", len(instances))

	report := &Report{
		Provider:      r.opts.Provider,
		InstanceCount: len(instances),
		Instances:     make([]InstanceResult, 0, len(instances)),
		Path:          r.opts.Path,
		DryRun:        r.opts.DryRun,
	}

	var endpoints []inventory.Endpoint
	for _, inst := range instances {
		res := InstanceResult{ID: inst.ID, Name: inventory.NormalizeName(inst.DisplayName)}

		eps, err := inventory.Extract(inst)
		if err != nil {
			res.Err = err
			res.Error = err.Error()
			log.Info("skipping instance", "instance", inst.ID, "reason", err.Error())
		} else {
			res.Endpoints = eps
			endpoints = append(endpoints, eps...)
			log.V(2).Info("instance converted", "instance", inst.ID, "endpoints", len(eps))
		}
		report.Instances = append(report.Instances, res)
	}

	doc, collisions := sshconfig.Synthesize(endpoints, r.opts.Template)
	report.Document = doc
	report.Collisions = collisions
	for _, c := range collisions {
		log.Info("host name collision, keeping last endpoint",
			"host", c.Name,
			"replaced", fmt.Sprintf("%s:%d", c.Previous.Hostname, c.Previous.Port),
			"kept", fmt.Sprintf("%s:%d", c.Current.Hostname, c.Current.Port))
	}

	if r.opts.DryRun {
		log.V(1).Info("dry run, not writing", "path", r.opts.Path, "hosts", len(doc.Blocks))
		return report, nil
	}

	if err := r.write(r.opts.Path, doc); err != nil {
		return report, err
	}
	report.Written = true
	log.V(1).Info("config written", "path", r.opts.Path, "hosts", len(doc.Blocks))
	return report, nil
}
