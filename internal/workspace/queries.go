package workspace

// Fixed GraphQL documents. Field selections define the remote shape the
// mappers in this package decode; change both together.

const listInitiativesQuery = `
query GetInitiatives($first: Int, $after: String, $before: String, $filter: InitiativeFilter) {
    initiatives(first: $first, after: $after, before: $before, filter: $filter) {
        nodes {
            id
            name
            description
            status
            owner {
                id
                name
                email
            }
            targetDate
            startedAt
            completedAt
            archivedAt
            createdAt
            updatedAt
            icon
            color
        }
        pageInfo {
            hasNextPage
            hasPreviousPage
            endCursor
            startCursor
        }
    }
}
`

const getInitiativeQuery = `
query GetInitiative($id: String!) {
    initiative(id: $id) {
        id
        name
        description
        content
        status
        owner {
            id
            name
            email
        }
        targetDate
        startedAt
        completedAt
        archivedAt
        createdAt
        updatedAt
        icon
        color
        projects(first: 50) {
            nodes {
                id
                name
                description
                state
                progress
                startedAt
                targetDate
            }
        }
        documents(first: 50) {
            nodes {
                id
                title
                content
                createdAt
                updatedAt
            }
        }
    }
}
`

const listProjectsQuery = `
query GetProjects($first: Int, $after: String, $before: String, $filter: ProjectFilter) {
    projects(first: $first, after: $after, before: $before, filter: $filter) {
        nodes {
            id
            name
            description
            state
            progress
            startedAt
            startDate
            targetDate
            completedAt
            canceledAt
            archivedAt
            createdAt
            updatedAt
            icon
            color
            slugId
            lead {
                id
                name
                email
            }
            teams(first: 10) {
                nodes {
                    id
                    name
                    key
                }
            }
            initiatives(first: 10) {
                nodes {
                    id
                    name
                }
            }
        }
        pageInfo {
            hasNextPage
            hasPreviousPage
            endCursor
            startCursor
        }
    }
}
`

const getProjectQuery = `
query GetProject($id: String!) {
    project(id: $id) {
        id
        name
        description
        content
        state
        progress
        startedAt
        startDate
        targetDate
        completedAt
        canceledAt
        archivedAt
        createdAt
        updatedAt
        icon
        color
        slugId
        lead {
            id
            name
            email
        }
        teams(first: 50) {
            nodes {
                id
                name
                key
            }
        }
        issues(first: 50) {
            nodes {
                id
                title
                identifier
                state {
                    name
                    type
                }
                priority
                projectMilestone {
                    id
                    name
                }
            }
        }
        documents(first: 50) {
            nodes {
                id
                title
                content
                createdAt
                updatedAt
            }
        }
        initiatives(first: 50) {
            nodes {
                id
                name
            }
        }
        projectMilestones {
            nodes {
                id
                name
                description
                targetDate
                status
                progress
                sortOrder
                createdAt
                updatedAt
            }
        }
    }
}
`

const listDocumentsQuery = `
query GetDocuments($first: Int, $after: String, $before: String, $filter: DocumentFilter) {
    documents(first: $first, after: $after, before: $before, filter: $filter) {
        nodes {
            id
            title
            content
            icon
            color
            archivedAt
            createdAt
            updatedAt
            creator {
                id
                name
                email
            }
            project {
                id
                name
            }
            initiative {
                id
                name
            }
        }
        pageInfo {
            hasNextPage
            hasPreviousPage
            endCursor
            startCursor
        }
    }
}
`

const getDocumentQuery = `
query GetDocument($id: String!) {
    document(id: $id) {
        id
        title
        content
        icon
        color
        archivedAt
        createdAt
        updatedAt
        creator {
            id
            name
            email
        }
        project {
            id
            name
        }
        initiative {
            id
            name
        }
    }
}
`

const viewerQuery = `
query TestConnection {
    viewer {
        id
        name
        email
    }
}
`
