package client

import (
	"io"

	goipp "github.com/alexpevzner/ippclient"
)

// Request is a lowered Operation: the wire-ready Message plus an
// optional streamed document body. Payload is nil for operations
// that carry no document data.
type Request struct {
	Message *goipp.Message
	Payload io.Reader
}

// Operation is the single-method contract every operation builder
// satisfies: lower its typed parameters into a Request addressed at
// a specific printer/job URI, stamped with requestID.
//
// Every Lower implementation starts the operation group with
// attributes-charset and attributes-natural-language, in that order.
// The printer- and job-level operations follow them with the target
// URI attribute (printer-uri); the CUPS server-level operations
// (CupsGetPrinters, CupsGetDefault, CupsGetClasses) carry no target URI.
type Operation interface {
	Lower(cfg *Config, requestID int32) (*Request, error)
}

func operationPrefix(m *goipp.Message, cfg *Config, uriName, uri string) {
	m.Operation.Add(goipp.MakeAttribute("attributes-charset",
		goipp.TagCharset, goipp.String(cfg.Charset)))
	m.Operation.Add(goipp.MakeAttribute("attributes-natural-language",
		goipp.TagLanguage, goipp.String(cfg.NaturalLang)))
	m.Operation.Add(goipp.MakeAttribute(uriName, goipp.TagURI, goipp.String(uri)))
}

// PrintJob submits a single document for printing in one request.
type PrintJob struct {
	PrinterURI string
	JobName    string
	Copies     int32
	Payload    io.Reader
}

// Lower implements Operation.
func (op PrintJob) Lower(cfg *Config, requestID int32) (*Request, error) {
	if op.PrinterURI == "" {
		return nil, &ParamError{Param: "PrinterURI", Reason: "must not be empty"}
	}
	if op.Payload == nil {
		return nil, &ParamError{Param: "Payload", Reason: "must not be nil"}
	}

	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpPrintJob, requestID)
	operationPrefix(m, cfg, "printer-uri", op.PrinterURI)
	if cfg.RequestingUser != "" {
		m.Operation.Add(goipp.MakeAttribute("requesting-user-name",
			goipp.TagName, goipp.String(cfg.RequestingUser)))
	}
	if op.JobName != "" {
		m.Operation.Add(goipp.MakeAttribute("job-name", goipp.TagName, goipp.String(op.JobName)))
	}
	if op.Copies > 0 {
		m.Job.Add(goipp.MakeAttribute("copies", goipp.TagInteger, goipp.Integer(op.Copies)))
	}

	return &Request{Message: m, Payload: op.Payload}, nil
}

// ValidateJob checks whether a job with the given attributes would be
// accepted, without creating one. No payload is sent.
type ValidateJob struct {
	PrinterURI string
	JobName    string
}

// Lower implements Operation.
func (op ValidateJob) Lower(cfg *Config, requestID int32) (*Request, error) {
	if op.PrinterURI == "" {
		return nil, &ParamError{Param: "PrinterURI", Reason: "must not be empty"}
	}

	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpValidateJob, requestID)
	operationPrefix(m, cfg, "printer-uri", op.PrinterURI)
	if cfg.RequestingUser != "" {
		m.Operation.Add(goipp.MakeAttribute("requesting-user-name",
			goipp.TagName, goipp.String(cfg.RequestingUser)))
	}
	if op.JobName != "" {
		m.Operation.Add(goipp.MakeAttribute("job-name", goipp.TagName, goipp.String(op.JobName)))
	}

	return &Request{Message: m}, nil
}

// CreateJob creates a job without any documents, to be followed by
// one or more SendDocument operations.
type CreateJob struct {
	PrinterURI string
	JobName    string
}

// Lower implements Operation.
func (op CreateJob) Lower(cfg *Config, requestID int32) (*Request, error) {
	if op.PrinterURI == "" {
		return nil, &ParamError{Param: "PrinterURI", Reason: "must not be empty"}
	}

	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpCreateJob, requestID)
	operationPrefix(m, cfg, "printer-uri", op.PrinterURI)
	if cfg.RequestingUser != "" {
		m.Operation.Add(goipp.MakeAttribute("requesting-user-name",
			goipp.TagName, goipp.String(cfg.RequestingUser)))
	}
	if op.JobName != "" {
		m.Operation.Add(goipp.MakeAttribute("job-name", goipp.TagName, goipp.String(op.JobName)))
	}

	return &Request{Message: m}, nil
}

// SendDocument attaches a document to a job previously opened with
// CreateJob. LastDocument must be true on the final document of the job.
type SendDocument struct {
	PrinterURI   string
	JobID        int32
	LastDocument bool
	Payload      io.Reader
}

// Lower implements Operation.
func (op SendDocument) Lower(cfg *Config, requestID int32) (*Request, error) {
	if op.PrinterURI == "" {
		return nil, &ParamError{Param: "PrinterURI", Reason: "must not be empty"}
	}
	if op.JobID == 0 {
		return nil, &ParamError{Param: "JobID", Reason: "must not be zero"}
	}
	if op.Payload == nil {
		return nil, &ParamError{Param: "Payload", Reason: "must not be nil"}
	}

	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpSendDocument, requestID)
	operationPrefix(m, cfg, "printer-uri", op.PrinterURI)
	m.Operation.Add(goipp.MakeAttribute("job-id", goipp.TagInteger, goipp.Integer(op.JobID)))
	if cfg.RequestingUser != "" {
		m.Operation.Add(goipp.MakeAttribute("requesting-user-name",
			goipp.TagName, goipp.String(cfg.RequestingUser)))
	}
	m.Operation.Add(goipp.MakeAttribute("last-document",
		goipp.TagBoolean, goipp.Boolean(op.LastDocument)))

	return &Request{Message: m, Payload: op.Payload}, nil
}

// CancelJob cancels a pending or processing job.
type CancelJob struct {
	PrinterURI string
	JobID      int32
	Message    string
}

// Lower implements Operation.
func (op CancelJob) Lower(cfg *Config, requestID int32) (*Request, error) {
	if op.PrinterURI == "" {
		return nil, &ParamError{Param: "PrinterURI", Reason: "must not be empty"}
	}
	if op.JobID == 0 {
		return nil, &ParamError{Param: "JobID", Reason: "must not be zero"}
	}

	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpCancelJob, requestID)
	operationPrefix(m, cfg, "printer-uri", op.PrinterURI)
	m.Operation.Add(goipp.MakeAttribute("job-id", goipp.TagInteger, goipp.Integer(op.JobID)))
	if cfg.RequestingUser != "" {
		m.Operation.Add(goipp.MakeAttribute("requesting-user-name",
			goipp.TagName, goipp.String(cfg.RequestingUser)))
	}
	if op.Message != "" {
		m.Operation.Add(goipp.MakeAttribute("message", goipp.TagText, goipp.String(op.Message)))
	}

	return &Request{Message: m}, nil
}

// jobIDOnly is shared by the handful of operations that take nothing
// but a printer URI and a job-id: Hold-Job, Release-Job, Restart-Job.
type jobIDOnly struct {
	op         goipp.Op
	PrinterURI string
	JobID      int32
}

func (j jobIDOnly) lower(cfg *Config, requestID int32) (*Request, error) {
	if j.PrinterURI == "" {
		return nil, &ParamError{Param: "PrinterURI", Reason: "must not be empty"}
	}
	if j.JobID == 0 {
		return nil, &ParamError{Param: "JobID", Reason: "must not be zero"}
	}

	m := goipp.NewRequest(goipp.DefaultVersion, j.op, requestID)
	operationPrefix(m, cfg, "printer-uri", j.PrinterURI)
	m.Operation.Add(goipp.MakeAttribute("job-id", goipp.TagInteger, goipp.Integer(j.JobID)))
	if cfg.RequestingUser != "" {
		m.Operation.Add(goipp.MakeAttribute("requesting-user-name",
			goipp.TagName, goipp.String(cfg.RequestingUser)))
	}

	return &Request{Message: m}, nil
}

// HoldJob holds a pending job from being scheduled for processing.
type HoldJob struct {
	PrinterURI string
	JobID      int32
}

// Lower implements Operation.
func (op HoldJob) Lower(cfg *Config, requestID int32) (*Request, error) {
	return jobIDOnly{goipp.OpHoldJob, op.PrinterURI, op.JobID}.lower(cfg, requestID)
}

// ReleaseJob releases a previously held job.
type ReleaseJob struct {
	PrinterURI string
	JobID      int32
}

// Lower implements Operation.
func (op ReleaseJob) Lower(cfg *Config, requestID int32) (*Request, error) {
	return jobIDOnly{goipp.OpReleaseJob, op.PrinterURI, op.JobID}.lower(cfg, requestID)
}

// RestartJob resubmits a previously completed, canceled, or aborted job.
type RestartJob struct {
	PrinterURI string
	JobID      int32
}

// Lower implements Operation.
func (op RestartJob) Lower(cfg *Config, requestID int32) (*Request, error) {
	return jobIDOnly{goipp.OpRestartJob, op.PrinterURI, op.JobID}.lower(cfg, requestID)
}

// GetJobAttributes fetches one job's attributes.
type GetJobAttributes struct {
	PrinterURI           string
	JobID                int32
	RequestedAttributes  []string
}

// Lower implements Operation.
func (op GetJobAttributes) Lower(cfg *Config, requestID int32) (*Request, error) {
	if op.PrinterURI == "" {
		return nil, &ParamError{Param: "PrinterURI", Reason: "must not be empty"}
	}
	if op.JobID == 0 {
		return nil, &ParamError{Param: "JobID", Reason: "must not be zero"}
	}

	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpGetJobAttributes, requestID)
	operationPrefix(m, cfg, "printer-uri", op.PrinterURI)
	m.Operation.Add(goipp.MakeAttribute("job-id", goipp.TagInteger, goipp.Integer(op.JobID)))
	addRequestedAttributes(m, op.RequestedAttributes)

	return &Request{Message: m}, nil
}

// GetJobs enumerates jobs known to a printer.
type GetJobs struct {
	PrinterURI          string
	WhichJobs           string // "completed" or "not-completed"
	MyJobsOnly          bool
	Limit               int32
	RequestedAttributes []string
}

// Lower implements Operation.
func (op GetJobs) Lower(cfg *Config, requestID int32) (*Request, error) {
	if op.PrinterURI == "" {
		return nil, &ParamError{Param: "PrinterURI", Reason: "must not be empty"}
	}

	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpGetJobs, requestID)
	operationPrefix(m, cfg, "printer-uri", op.PrinterURI)
	if op.Limit > 0 {
		m.Operation.Add(goipp.MakeAttribute("limit", goipp.TagInteger, goipp.Integer(op.Limit)))
	}
	if op.WhichJobs != "" {
		m.Operation.Add(goipp.MakeAttribute("which-jobs", goipp.TagKeyword, goipp.String(op.WhichJobs)))
	}
	if op.MyJobsOnly {
		m.Operation.Add(goipp.MakeAttribute("my-jobs", goipp.TagBoolean, goipp.Boolean(true)))
		if cfg.RequestingUser != "" {
			m.Operation.Add(goipp.MakeAttribute("requesting-user-name",
				goipp.TagName, goipp.String(cfg.RequestingUser)))
		}
	}
	addRequestedAttributes(m, op.RequestedAttributes)

	return &Request{Message: m}, nil
}

// GetPrinterAttributes fetches a printer's capability and status
// attributes, the canonical IPP "ping" used for discovery/capability
// probing (modeled directly on ippGetPrinterAttributes).
type GetPrinterAttributes struct {
	PrinterURI          string
	RequestedAttributes []string
}

// Lower implements Operation.
func (op GetPrinterAttributes) Lower(cfg *Config, requestID int32) (*Request, error) {
	if op.PrinterURI == "" {
		return nil, &ParamError{Param: "PrinterURI", Reason: "must not be empty"}
	}

	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpGetPrinterAttributes, requestID)
	operationPrefix(m, cfg, "printer-uri", op.PrinterURI)
	addRequestedAttributes(m, op.RequestedAttributes)

	return &Request{Message: m}, nil
}

// CupsGetPrinters enumerates the printers known to a CUPS server -
// unlike the other operations here, it addresses the server itself,
// not a specific printer, so it carries no target URI attribute.
type CupsGetPrinters struct {
	ServerURI string
}

// Lower implements Operation.
func (op CupsGetPrinters) Lower(cfg *Config, requestID int32) (*Request, error) {
	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpCupsGetPrinters, requestID)
	m.Operation.Add(goipp.MakeAttribute("attributes-charset",
		goipp.TagCharset, goipp.String(cfg.Charset)))
	m.Operation.Add(goipp.MakeAttribute("attributes-natural-language",
		goipp.TagLanguage, goipp.String(cfg.NaturalLang)))

	return &Request{Message: m}, nil
}

// CupsGetDefault fetches the CUPS server's default printer.
type CupsGetDefault struct {
	ServerURI string
}

// Lower implements Operation.
func (op CupsGetDefault) Lower(cfg *Config, requestID int32) (*Request, error) {
	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpCupsGetDefault, requestID)
	m.Operation.Add(goipp.MakeAttribute("attributes-charset",
		goipp.TagCharset, goipp.String(cfg.Charset)))
	m.Operation.Add(goipp.MakeAttribute("attributes-natural-language",
		goipp.TagLanguage, goipp.String(cfg.NaturalLang)))

	return &Request{Message: m}, nil
}

// CupsGetClasses mirrors CupsGetPrinters for printer classes.
type CupsGetClasses struct {
	ServerURI string
}

// Lower implements Operation.
func (op CupsGetClasses) Lower(cfg *Config, requestID int32) (*Request, error) {
	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpCupsGetClasses, requestID)
	m.Operation.Add(goipp.MakeAttribute("attributes-charset",
		goipp.TagCharset, goipp.String(cfg.Charset)))
	m.Operation.Add(goipp.MakeAttribute("attributes-natural-language",
		goipp.TagLanguage, goipp.String(cfg.NaturalLang)))

	return &Request{Message: m}, nil
}

func addRequestedAttributes(m *goipp.Message, names []string) {
	if len(names) == 0 {
		return
	}
	attr := goipp.Attribute{Name: "requested-attributes"}
	for _, name := range names {
		attr.Values.Add(goipp.TagKeyword, goipp.String(name))
	}
	m.Operation.Add(attr)
}
